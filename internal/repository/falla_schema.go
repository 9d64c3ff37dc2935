package repository

import (
	"fmt"
	"regexp"
)

// The Falla_Proveedor table drifted across deployments, so its real column
// names are discovered against the catalog at first use instead of assumed.
const fallaTable = "Falla_Proveedor"

// FallaSchema maps each logical field to the physical column that backs it.
// An empty string means the table has no column for that field.
type FallaSchema struct {
	ID             string
	Provider       string
	Description    string
	Date           string
	Status         string
	Severity       string
	Actions        string
	ResolutionDate string
}

// Candidate aliases per logical field, in preference order. These are the
// names observed in the wild; first match wins.
var fallaColumnCandidates = struct {
	id, provider, description, date, status, severity, actions, resolutionDate []string
}{
	id:             []string{"id_falla", "id_incidencia", "id_falla_proveedor", "id"},
	provider:       []string{"id_proveedor"},
	description:    []string{"descripcion", "detalle", "observaciones", "motivo"},
	date:           []string{"fecha_registro", "fecha_falla", "fecha_reporte"},
	status:         []string{"estado", "estatus", "situacion"},
	severity:       []string{"criticidad", "nivel_criticidad", "gravedad", "impacto"},
	actions:        []string{"acciones", "acciones_correctivas", "acciones_tomadas", "resolucion", "observaciones", "observaciones_cierre"},
	resolutionDate: []string{"fecha_resolucion", "fecha_cierre", "fecha_solucion"},
}

func firstMatch(columns []string, candidates []string) string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	for _, cand := range candidates {
		if present[cand] {
			return cand
		}
	}
	return ""
}

// resolveFallaSchema picks the backing column for each logical field from the
// table's actual column list. id and provider are mandatory; everything else
// is optional and simply absent when no alias matches.
func resolveFallaSchema(columns []string) (*FallaSchema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no se encontraron columnas para la tabla %s", fallaTable)
	}

	s := &FallaSchema{
		ID:             firstMatch(columns, fallaColumnCandidates.id),
		Provider:       firstMatch(columns, fallaColumnCandidates.provider),
		Description:    firstMatch(columns, fallaColumnCandidates.description),
		Date:           firstMatch(columns, fallaColumnCandidates.date),
		Status:         firstMatch(columns, fallaColumnCandidates.status),
		Severity:       firstMatch(columns, fallaColumnCandidates.severity),
		Actions:        firstMatch(columns, fallaColumnCandidates.actions),
		ResolutionDate: firstMatch(columns, fallaColumnCandidates.resolutionDate),
	}

	if s.Provider == "" {
		return nil, fmt.Errorf("la tabla %s debe tener la columna id_proveedor", fallaTable)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("la tabla %s debe tener una columna identificadora (por ejemplo id_falla)", fallaTable)
	}
	return s, nil
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// quoteIdent double-quotes a catalog-sourced identifier. Only names already
// read back from information_schema ever reach this; anything else is rejected
// so user input can never be spliced into SQL as an identifier.
func quoteIdent(name string) (string, error) {
	if !identPattern.MatchString(name) {
		return "", fmt.Errorf("identificador invalido: %q", name)
	}
	return `"` + name + `"`, nil
}
