package platformservice

import (
	convert "github.com/redjax/sysfacts/internal/utils/convert"
)

// RAMBytes returns installed physical memory in bytes.
func (s *Service) RAMBytes() (uint64, error) {
	return intFact[uint64](s, FactMemSize)
}

// RAMGigabytes returns installed memory in whole GiB, truncated.
func (s *Service) RAMGigabytes() (uint64, error) {
	b, err := s.RAMBytes()
	if err != nil {
		return 0, err
	}
	return convert.BytesToGigabytes(b), nil
}
