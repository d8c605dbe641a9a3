package domain

type Ambulance struct {
	VehicleNo string     `json:"vehicle_no"`
	Email     string     `json:"email"`
	Location  Coordinate `json:"location"`
}

func (a Ambulance) Coord() Coordinate { return a.Location }

type Hospital struct {
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

func (h Hospital) Coord() Coordinate { return h.Location }

// VehicleContacts is the registered owner plus up to two emergency emails.
type VehicleContacts struct {
	VehicleNo       string   `json:"vehicle_no"`
	OwnerName       string   `json:"owner_name"`
	OwnerEmail      string   `json:"owner_email"`
	EmergencyEmails []string `json:"emergency_emails"`
}

// Recipients returns the union of owner and emergency emails with absent
// entries skipped.
func (v VehicleContacts) Recipients() []string {
	out := make([]string, 0, 1+len(v.EmergencyEmails))
	if v.OwnerEmail != "" {
		out = append(out, v.OwnerEmail)
	}
	for _, e := range v.EmergencyEmails {
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
