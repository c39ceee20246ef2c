// Package rescue define los perfiles de rescate usados como filtros
// enlatados sobre la colección de animales: raza, sexo y rango de edad
// por categoría de entrenamiento (water / mountain / disaster).
package rescue

import (
	"errors"
	"strings"
)

type Type string

const (
	TypeWater    Type = "water"
	TypeMountain Type = "mountain"
	TypeDisaster Type = "disaster"
)

var ErrUnknownType = errors.New("unknown rescue type")

type profile struct {
	label       string
	breeds      []string
	sex         string
	minAgeWeeks float64
	maxAgeWeeks float64
}

// Criterios que usa el equipo de entrenamiento para preseleccionar candidatos.
var profiles = map[Type]profile{
	TypeWater: {
		label: "Water Rescue",
		breeds: []string{
			"Labrador Retriever Mix",
			"Chesapeake Bay Retriever",
			"Newfoundland",
		},
		sex:         "Intact Female",
		minAgeWeeks: 26,
		maxAgeWeeks: 156,
	},
	TypeMountain: {
		label: "Mountain or Wilderness Rescue",
		breeds: []string{
			"German Shepherd",
			"Alaskan Malamute",
			"Old English Sheepdog",
			"Siberian Husky",
			"Rottweiler",
		},
		sex:         "Intact Male",
		minAgeWeeks: 26,
		maxAgeWeeks: 156,
	},
	TypeDisaster: {
		label: "Disaster or Individual Tracking",
		breeds: []string{
			"Doberman Pinscher",
			"German Shepherd",
			"Golden Retriever",
			"Bloodhound",
			"Rottweiler",
		},
		sex:         "Intact Male",
		minAgeWeeks: 20,
		maxAgeWeeks: 300,
	},
}

// ParseType normaliza el valor recibido (querystring / CLI) a un Type.
// Acepta los alias históricos: "mount" y "wilderness" para mountain,
// "tracking" para disaster. Desconocido => ErrUnknownType.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "water":
		return TypeWater, nil
	case "mountain", "mount", "wilderness":
		return TypeMountain, nil
	case "disaster", "tracking":
		return TypeDisaster, nil
	default:
		return "", ErrUnknownType
	}
}

// Types devuelve las categorías en orden estable de presentación.
func Types() []Type {
	return []Type{TypeWater, TypeMountain, TypeDisaster}
}

func (t Type) Label() string {
	p, ok := profiles[t]
	if !ok {
		return string(t)
	}
	return p.label
}

func (t Type) Breeds() []string {
	p, ok := profiles[t]
	if !ok {
		return nil
	}
	out := make([]string, len(p.breeds))
	copy(out, p.breeds)
	return out
}

// Criteria es el criterio de búsqueda de un perfil, en tipos planos para
// que cualquier capa lo traduzca a su filtro sin acoplar este paquete.
type Criteria struct {
	AnimalTypes    []string
	Breeds         []string
	SexUponOutcome string
	MinAgeWeeks    float64
	MaxAgeWeeks    float64
}

// CriteriaFor devuelve el criterio de la categoría: siempre perros, razas
// del perfil, sexo exacto y edad en semanas dentro de [min, max].
func CriteriaFor(t Type) (Criteria, error) {
	p, ok := profiles[t]
	if !ok {
		return Criteria{}, ErrUnknownType
	}

	return Criteria{
		AnimalTypes:    []string{"Dog"},
		Breeds:         t.Breeds(),
		SexUponOutcome: p.sex,
		MinAgeWeeks:    p.minAgeWeeks,
		MaxAgeWeeks:    p.maxAgeWeeks,
	}, nil
}
