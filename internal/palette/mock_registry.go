package palette

// MockRegistry is a mock implementation of the Registry interface for
// testing with synthetic palette sets.
type MockRegistry struct {
	PalettesFunc func() []Info
	ColorsFunc   func(name string, count int) ([]string, error)
}

func (m *MockRegistry) Palettes() []Info {
	if m.PalettesFunc != nil {
		return m.PalettesFunc()
	}
	return nil
}

func (m *MockRegistry) Colors(name string, count int) ([]string, error) {
	if m.ColorsFunc != nil {
		return m.ColorsFunc(name, count)
	}
	return nil, nil
}
