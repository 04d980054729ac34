package league

// Stage codes of a season.
const (
	StageApertura   = "apertura"
	StageClausura   = "clausura"
	StageIntermedio = "intermedio"
	StageAnual      = "anual"
)

// StageNames maps each known stage to its display name.
var StageNames = map[string]string{
	StageApertura:   "Torneo Apertura",
	StageClausura:   "Torneo Clausura",
	StageIntermedio: "Torneo Intermedio",
	StageAnual:      "Tabla Anual",
}

// StageCodes is the display order of stages.
var StageCodes = []string{StageApertura, StageIntermedio, StageClausura, StageAnual}

// IsKnownStage reports whether code is a registered stage.
func IsKnownStage(code string) bool {
	_, ok := StageNames[code]
	return ok
}

// StagesFor expands an aggregate stage into the stages stored in the data.
// The annual table is the sum of apertura and clausura.
func StagesFor(stage string) []string {
	if stage == StageAnual {
		return []string{StageApertura, StageClausura}
	}
	return []string{stage}
}
