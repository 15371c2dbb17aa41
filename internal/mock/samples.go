package mock

import "errors"

var ErrSampleMissing = errors.New("sample missing")

// Samples implements port.SampleAssets for tests.
type Samples struct {
	Files map[string][]byte

	Opened []string
}

func (m *Samples) Open(name string) ([]byte, error) {
	m.Opened = append(m.Opened, name)
	data, ok := m.Files[name]
	if !ok {
		return nil, ErrSampleMissing
	}
	return data, nil
}
