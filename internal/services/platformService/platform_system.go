package platformservice

// Hostname returns the configured host name.
func (s *Service) Hostname() (string, error) {
	return s.stringFact(FactHostname)
}

// OSVersion returns the OS build or product version string.
func (s *Service) OSVersion() (string, error) {
	return s.stringFact(FactOSVersion)
}

// Model returns the hardware model, e.g. "MacBookPro18,3" or "iPhone14,2".
func (s *Service) Model() (string, error) {
	return s.stringFact(FactModel)
}

// Machine returns the machine class reported next to the model.
func (s *Service) Machine() (string, error) {
	return s.stringFact(FactMachine)
}

// OSType returns the kernel name, e.g. "Darwin".
func (s *Service) OSType() (string, error) {
	return s.stringFact(FactOSType)
}

// OSRelease returns the kernel release, e.g. "23.4.0".
func (s *Service) OSRelease() (string, error) {
	return s.stringFact(FactOSRelease)
}

// OSRevision returns the kernel revision number.
func (s *Service) OSRevision() (int32, error) {
	return intFact[int32](s, FactOSRevision)
}

// KernelVersion returns the full kernel version banner.
func (s *Service) KernelVersion() (string, error) {
	return s.stringFact(FactKernelVersion)
}
