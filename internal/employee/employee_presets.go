package employee

// TypePreset seeds the profile form for a named employee category. Salaried
// is a capability flag carried onto the profile, never re-derived from the
// type name, so renaming a category cannot silently change pay behavior.
type TypePreset struct {
	Name            string  `json:"name"`
	BasicSalary     float64 `json:"basic_salary"`
	DailyRate       float64 `json:"daily_rate"`
	SundayRate      float64 `json:"sunday_rate"`
	AttendanceBonus float64 `json:"attendance_bonus"`
	Salaried        bool    `json:"salaried"`
}

var typePresets = []TypePreset{
	{Name: "Working Staff (BULB)", BasicSalary: 24000, DailyRate: 1080, SundayRate: 1620, AttendanceBonus: 1500, Salaried: false},
	{Name: "Employee (ORIN)", BasicSalary: 24000, DailyRate: 1080, SundayRate: 1620, AttendanceBonus: 3000, Salaried: true},
	{Name: "Employee (Nescafe)", BasicSalary: 24000, DailyRate: 1080, SundayRate: 1620, AttendanceBonus: 3000, Salaried: true},
	{Name: "Employee (Siyallanka)", BasicSalary: 24000, DailyRate: 1080, SundayRate: 1620, AttendanceBonus: 3000, Salaried: true},
}

func TypePresets() []TypePreset {
	out := make([]TypePreset, len(typePresets))
	copy(out, typePresets)
	return out
}

func presetFor(name string) (TypePreset, bool) {
	for _, p := range typePresets {
		if p.Name == name {
			return p, true
		}
	}
	return TypePreset{}, false
}
