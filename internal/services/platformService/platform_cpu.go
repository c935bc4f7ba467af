package platformservice

import "strconv"

// CPUModel returns the processor class. It reads the machine key, the
// mirror of Model, so iOS devices report the board id here.
func (s *Service) CPUModel() (string, error) {
	return s.stringFact(FactMachine)
}

// AvailableCPUs returns the number of logical CPUs available to the OS.
func (s *Service) AvailableCPUs() (int32, error) {
	return intFact[int32](s, FactAvailableCPUs)
}

// CPUBrand returns the marketing name of the processor.
func (s *Service) CPUBrand() (string, error) {
	return s.stringFact(FactCPUBrand)
}

// CPUVendor returns the processor vendor id, e.g. "GenuineIntel".
func (s *Service) CPUVendor() (string, error) {
	return s.stringFact(FactCPUVendor)
}

// PhysicalCores returns the number of physical cores.
func (s *Service) PhysicalCores() (int32, error) {
	return intFact[int32](s, FactPhysicalCores)
}

// Is64Bit reports whether the native integer is 64 bits wide.
func (s *Service) Is64Bit() bool {
	return strconv.IntSize == 64
}
