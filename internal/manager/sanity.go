package manager

// SanityReport describes whether the loading capability is present.
type SanityReport struct {
	LoaderAvailable bool   `json:"loader_available"`
	Device          string `json:"device"`
	Error           string `json:"error,omitempty"`
}

// SanityCheck asks the loader whether it can load at all.
// It does not mutate state and is safe to call at any time.
func (m *Manager) SanityCheck() SanityReport {
	r := SanityReport{Device: string(m.settings.Device())}
	if err := m.loader.Available(); err != nil {
		r.Error = err.Error()
		return r
	}
	r.LoaderAvailable = true
	return r
}
