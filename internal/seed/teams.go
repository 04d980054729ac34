package seed

import (
	"github.com/gosimple/slug"

	"github.com/albapepper/auf-analytics/internal/league"
)

// DefaultTeams is the 16-club Primera División used by the simulator.
func DefaultTeams() []league.Team {
	teams := []league.Team{
		{ID: 1, Name: "Nacional", ShortName: "NAC", City: "Montevideo", Stadium: "Gran Parque Central"},
		{ID: 2, Name: "Peñarol", ShortName: "PEN", City: "Montevideo", Stadium: "Campeón del Siglo"},
		{ID: 3, Name: "Defensor Sporting", ShortName: "DEF", City: "Montevideo", Stadium: "Estadio Luis Franzini"},
		{ID: 4, Name: "Danubio", ShortName: "DAN", City: "Montevideo", Stadium: "Jardines del Hipódromo"},
		{ID: 5, Name: "Liverpool", ShortName: "LIV", City: "Montevideo", Stadium: "Estadio Belvedere"},
		{ID: 6, Name: "Montevideo Wanderers", ShortName: "WAN", City: "Montevideo", Stadium: "Parque Alfredo Víctor Viera"},
		{ID: 7, Name: "River Plate", ShortName: "RIV", City: "Montevideo", Stadium: "Parque Federico Omar Saroldi"},
		{ID: 8, Name: "Cerro", ShortName: "CER", City: "Montevideo", Stadium: "Estadio Luis Tróccoli"},
		{ID: 9, Name: "Racing", ShortName: "RAC", City: "Montevideo", Stadium: "Parque Osvaldo Roberto"},
		{ID: 10, Name: "Boston River", ShortName: "BOS", City: "Montevideo", Stadium: "Estadio Centenario"},
		{ID: 11, Name: "Montevideo City Torque", ShortName: "MCT", City: "Montevideo", Stadium: "Estadio Centenario"},
		{ID: 12, Name: "Cerro Largo", ShortName: "CLA", City: "Melo", Stadium: "Estadio Antonio Ubilla"},
		{ID: 13, Name: "Deportivo Maldonado", ShortName: "MAL", City: "Maldonado", Stadium: "Estadio Domingo Burgueño"},
		{ID: 14, Name: "Fénix", ShortName: "FEN", City: "Montevideo", Stadium: "Parque Capurro"},
		{ID: 15, Name: "Progreso", ShortName: "PRO", City: "Montevideo", Stadium: "Parque Abraham Paladino"},
		{ID: 16, Name: "Rampla Juniors", ShortName: "RAM", City: "Montevideo", Stadium: "Estadio Olímpico"},
	}
	for i := range teams {
		teams[i].LogoKey = LogoKey(teams[i].Name)
	}
	return teams
}

// LogoKey derives the asset key of a club crest from its name:
// "Peñarol" -> "penarol".
func LogoKey(name string) string {
	return slug.Make(name)
}
