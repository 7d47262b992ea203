package seed

// Defaults used when a Config field is left zero.
const (
	DefaultPlayers  = 40
	DefaultSessions = 24
	DefaultOut      = "lineout.xlsx"
	MaxPlayers      = 500
)

// Attendance generation.
const (
	minPropensity   = 0.35
	propensityRange = 0.6
	formShare       = 0.55 // share of attendees that sign in via the form
	maxFormGroup    = 3    // names per form response
	placeholderRate = 0.15 // chance per session of a "nan" or blank form row
	guestRate       = 0.2  // chance per session of a name missing from the roster
	injuryRate      = 0.12
	forwardShare    = 0.55
)

var (
	firstNames = []string{
		"Juan", "Ana", "Tomas", "Lucia", "Mateo", "Sofia", "Diego", "Valentina",
		"Martin", "Camila", "Nicolas", "Julieta", "Facundo", "Agustina", "Santiago",
		"Florencia", "Ignacio", "Paula", "Joaquin", "Carla",
	}
	lastNames = []string{
		"Perez", "Diaz", "Gomez", "Fernandez", "Lopez", "Martinez", "Rodriguez",
		"Sanchez", "Romero", "Alvarez", "Torres", "Ruiz", "Castro", "Ortiz", "Silva",
	}
	forwardPositions = []string{"Pilar", "Hooker", "Segunda linea", "Ala", "Octavo"}
	backPositions    = []string{"Medio scrum", "Apertura", "Centro", "Wing", "Fullback"}
	severities       = []string{"Rojo", "Amarillo", "Verde"}
	diagnoses        = []string{"Esguince de tobillo", "Contractura", "Conmocion", "Desgarro", "Luxacion de hombro"}
	guests           = []string{"Invitado", "Pedro Prueba", "Marcos Visitante"}
)
