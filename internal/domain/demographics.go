package domain

import "slices"

// unspecifiedLabel is shown for any code the enums below do not know.
const unspecifiedLabel = "No especificado"

// Gender is the respondent's self-reported gender code.
type Gender string

const (
	GenderMasculino Gender = "masculino"
	GenderFemenino  Gender = "femenino"
	GenderOtro      Gender = "otro"
)

// Genders lists every accepted gender code.
var Genders = []Gender{GenderMasculino, GenderFemenino, GenderOtro}

// Valid reports whether g is one of Genders.
func (g Gender) Valid() bool { return slices.Contains(Genders, g) }

func (g Gender) Label() string {
	switch g {
	case GenderMasculino:
		return "Masculino"
	case GenderFemenino:
		return "Femenino"
	case GenderOtro:
		return "Otro"
	default:
		return unspecifiedLabel
	}
}

// MaritalStatus is the respondent's marital status code.
type MaritalStatus string

const (
	MaritalSoltero    MaritalStatus = "soltero"
	MaritalCasado     MaritalStatus = "casado"
	MaritalUnionLibre MaritalStatus = "union_libre"
	MaritalDivorciado MaritalStatus = "divorciado"
	MaritalViudo      MaritalStatus = "viudo"
	MaritalSeparado   MaritalStatus = "separado"
)

var MaritalStatuses = []MaritalStatus{
	MaritalSoltero, MaritalCasado, MaritalUnionLibre,
	MaritalDivorciado, MaritalViudo, MaritalSeparado,
}

func (m MaritalStatus) Valid() bool { return slices.Contains(MaritalStatuses, m) }

func (m MaritalStatus) Label() string {
	switch m {
	case MaritalSoltero:
		return "Soltero/a"
	case MaritalCasado:
		return "Casado/a"
	case MaritalUnionLibre:
		return "Unión Libre"
	case MaritalDivorciado:
		return "Divorciado/a"
	case MaritalViudo:
		return "Viudo/a"
	case MaritalSeparado:
		return "Separado/a"
	default:
		return unspecifiedLabel
	}
}

// Occupation is the respondent's occupation code.
type Occupation string

const (
	OccupationEstudiante        Occupation = "estudiante"
	OccupationMedico            Occupation = "medico"
	OccupationIngeniero         Occupation = "ingeniero"
	OccupationAbogado           Occupation = "abogado"
	OccupationMaestro           Occupation = "maestro"
	OccupationEnfermero         Occupation = "enfermero"
	OccupationContador          Occupation = "contador"
	OccupationArquitecto        Occupation = "arquitecto"
	OccupationPsicologo         Occupation = "psicologo"
	OccupationVendedor          Occupation = "vendedor"
	OccupationEmpresario        Occupation = "empresario"
	OccupationEmpleadoPublico   Occupation = "empleado_publico"
	OccupationTrabajadorSocial  Occupation = "trabajador_social"
	OccupationArtista           Occupation = "artista"
	OccupationChef              Occupation = "chef"
	OccupationPolicia           Occupation = "policia"
	OccupationBombero           Occupation = "bombero"
	OccupationTecnico           Occupation = "tecnico"
	OccupationComerciante       Occupation = "comerciante"
	OccupationEmpleadoDomestico Occupation = "empleado_domestico"
	OccupationJubilado          Occupation = "jubilado"
	OccupationDesempleado       Occupation = "desempleado"
	OccupationOtro              Occupation = "otro"
)

var Occupations = []Occupation{
	OccupationEstudiante, OccupationMedico, OccupationIngeniero, OccupationAbogado,
	OccupationMaestro, OccupationEnfermero, OccupationContador, OccupationArquitecto,
	OccupationPsicologo, OccupationVendedor, OccupationEmpresario, OccupationEmpleadoPublico,
	OccupationTrabajadorSocial, OccupationArtista, OccupationChef, OccupationPolicia,
	OccupationBombero, OccupationTecnico, OccupationComerciante, OccupationEmpleadoDomestico,
	OccupationJubilado, OccupationDesempleado, OccupationOtro,
}

func (o Occupation) Valid() bool { return slices.Contains(Occupations, o) }

func (o Occupation) Label() string {
	switch o {
	case OccupationEstudiante:
		return "Estudiante"
	case OccupationMedico:
		return "Médico"
	case OccupationIngeniero:
		return "Ingeniero"
	case OccupationAbogado:
		return "Abogado"
	case OccupationMaestro:
		return "Maestro/Profesor"
	case OccupationEnfermero:
		return "Enfermero"
	case OccupationContador:
		return "Contador"
	case OccupationArquitecto:
		return "Arquitecto"
	case OccupationPsicologo:
		return "Psicólogo"
	case OccupationVendedor:
		return "Vendedor"
	case OccupationEmpresario:
		return "Empresario"
	case OccupationEmpleadoPublico:
		return "Empleado Público"
	case OccupationTrabajadorSocial:
		return "Trabajador Social"
	case OccupationArtista:
		return "Artista"
	case OccupationChef:
		return "Chef/Cocinero"
	case OccupationPolicia:
		return "Policía"
	case OccupationBombero:
		return "Bombero"
	case OccupationTecnico:
		return "Técnico"
	case OccupationComerciante:
		return "Comerciante"
	case OccupationEmpleadoDomestico:
		return "Empleado Doméstico"
	case OccupationJubilado:
		return "Jubilado"
	case OccupationDesempleado:
		return "Desempleado"
	case OccupationOtro:
		return "Otro"
	default:
		return unspecifiedLabel
	}
}

// AgeGroup buckets respondents by age for the dashboard.
type AgeGroup int

const (
	AgeGroupUnder13 AgeGroup = iota + 1
	AgeGroup13To17
	AgeGroup18To25
	AgeGroup26To35
	AgeGroup36To45
	AgeGroup46To55
	AgeGroup56Plus
	AgeGroupUnknown
)

// AgeGroups lists the buckets in display order.
var AgeGroups = []AgeGroup{
	AgeGroupUnder13, AgeGroup13To17, AgeGroup18To25, AgeGroup26To35,
	AgeGroup36To45, AgeGroup46To55, AgeGroup56Plus, AgeGroupUnknown,
}

// AgeGroupFor buckets an age in whole years. Negative ages are unknown.
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age < 0:
		return AgeGroupUnknown
	case age < 13:
		return AgeGroupUnder13
	case age <= 17:
		return AgeGroup13To17
	case age <= 25:
		return AgeGroup18To25
	case age <= 35:
		return AgeGroup26To35
	case age <= 45:
		return AgeGroup36To45
	case age <= 55:
		return AgeGroup46To55
	default:
		return AgeGroup56Plus
	}
}

func (a AgeGroup) Label() string {
	switch a {
	case AgeGroupUnder13:
		return "Menor de 13 años"
	case AgeGroup13To17:
		return "13-17 años"
	case AgeGroup18To25:
		return "18-25 años"
	case AgeGroup26To35:
		return "26-35 años"
	case AgeGroup36To45:
		return "36-45 años"
	case AgeGroup46To55:
		return "46-55 años"
	case AgeGroup56Plus:
		return "56+ años"
	default:
		return unspecifiedLabel
	}
}
