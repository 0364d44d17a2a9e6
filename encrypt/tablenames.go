package encrypt

import "strings"

// TableNameIndex is a case-insensitive collection of logical table names. It
// preserves the configured spelling and insertion order for enumeration.
type TableNameIndex struct {
	names map[string]string // lower-cased name -> configured spelling
	order []string          // lower-cased names in insertion order
}

func newTableNameIndex() *TableNameIndex {
	return &TableNameIndex{names: make(map[string]string)}
}

// add records a table name. Re-adding an existing name updates the stored
// spelling but keeps the original position.
func (i *TableNameIndex) add(name string) {
	key := strings.ToLower(name)
	if _, exists := i.names[key]; !exists {
		i.order = append(i.order, key)
	}
	i.names[key] = name
}

// Contains reports whether the index holds the table name, ignoring case.
func (i *TableNameIndex) Contains(name string) bool {
	_, ok := i.names[strings.ToLower(name)]
	return ok
}

// Names returns the configured spellings in insertion order.
func (i *TableNameIndex) Names() []string {
	names := make([]string, 0, len(i.order))
	for _, key := range i.order {
		names = append(names, i.names[key])
	}
	return names
}

// Len returns the number of distinct table names.
func (i *TableNameIndex) Len() int {
	return len(i.order)
}
