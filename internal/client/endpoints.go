package client

// Endpoint paths for the PetLoves backend. Entity routes are mounted under
// the /api prefix; the health probe is served at the root.
const (
	epRegister     = "/api/users"
	epRegisterAlt  = "/api/users/register"
	epLogin        = "/api/users/login"
	epPets         = "/api/pets"
	epOrders       = "/api/orders"
	epAdoptions    = "/api/adoptions"
	epAppointments = "/api/appointments"
	epVisits       = "/api/visits"
	epHealth       = "/health"
)

func epProfile(userID string) string { return epRegister + "/profile/" + userID }

func epPet(petID string) string { return epPets + "/" + petID }

func epOrdersByUser(userID string) string { return epOrders + "/" + userID }

func epAdoptionsByUser(userID string) string { return epAdoptions + "/" + userID }

func epAppointmentsByUser(userID string) string { return epAppointments + "/" + userID }

func epVisitsByUser(userID string) string { return epVisits + "/" + userID }
