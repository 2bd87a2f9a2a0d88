package domain

// Team is a production department with its own leader and machine pool.
// The roster is supplied externally and is read-only to the engine.
type Team struct {
	ID      string
	Label   string
	Reparto string
	Leader  string
}

// Machine is a production machine owned by one reparto. MinStaff comes
// with the roster record but carries no scheduling weight here.
type Machine struct {
	ID       string
	Name     string
	Reparto  string
	MinStaff int
}

// DisplayName returns the machine's display name, falling back to its id.
func (m Machine) DisplayName() string {
	return CoalesceStr(m.Name, m.ID)
}
