package data

import "fmt"

// Canonical column names shared by the labelling and feature stages.
const (
	EngineColumn = "Engine_no"
	CycleColumn  = "Cycle"
	RULColumn    = "RUL"
)

// Role prefixes of the dataset files.
const (
	RoleTrain = "train"
	RoleTest  = "test"
	RoleRUL   = "RUL"
)

// Schema describes the column layout of a headerless data file.
type Schema struct {
	Name    string
	Columns []string
}

// DefaultFullSchema is the layout of the train_* and test_* files: entity,
// cycle, three operational settings and 21 sensors.
var DefaultFullSchema = Schema{
	Name: "full",
	Columns: []string{
		EngineColumn, CycleColumn,
		"Altitude", "Mach_no", "TRA",
		"T2", "T24", "T30", "T50",
		"P2", "P15", "P30",
		"Nf", "Nc", "epr", "Ps30", "phi",
		"NRf", "NRc", "BPR", "farB", "htBleed",
		"Nf_dmd", "PCNfR_dmd", "W31", "W32",
	},
}

// DefaultRULSchema is the layout of the RUL_* ground-truth files.
var DefaultRULSchema = Schema{
	Name:    "rul",
	Columns: []string{RULColumn},
}

// DatasetName returns the collection key for a role and condition set,
// e.g. DatasetName(RoleTrain, 1) == "train_FD001".
func DatasetName(role string, set int) string {
	return fmt.Sprintf("%s_FD%03d", role, set)
}
