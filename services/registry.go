package services

// Registry bundles every persistence service behind a single handle the
// consuming shell receives explicitly; nothing in this module is reachable
// through ambient process-wide state, so tests can substitute an in-memory
// store wholesale.
type Registry struct {
	Users        UserService
	Patients     *PatientService
	Appointments *AppointmentService
	Treatments   *TreatmentService
	Billing      *BillingService
}

func NewRegistry(
	users UserService,
	patients *PatientService,
	appointments *AppointmentService,
	treatments *TreatmentService,
	billing *BillingService,
) *Registry {
	return &Registry{
		Users:        users,
		Patients:     patients,
		Appointments: appointments,
		Treatments:   treatments,
		Billing:      billing,
	}
}
