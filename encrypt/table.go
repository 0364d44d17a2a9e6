package encrypt

// Table holds the validated encrypt bindings of one logical table. Columns
// are keyed by exact logical name; declaration order is preserved for
// enumeration. A Table is immutable once built.
type Table struct {
	name    string
	columns map[string]*Column
	order   []string
}

// newTable resolves every column of a table configuration. Any reference to
// an encryptor lacking the required capability fails the whole build.
func newTable(config TableRuleConfig, registry *capabilityRegistry) (*Table, error) {
	t := &Table{
		name:    config.Name,
		columns: make(map[string]*Column, len(config.Columns)),
		order:   make([]string, 0, len(config.Columns)),
	}
	for _, columnConfig := range config.Columns {
		column, err := newColumn(columnConfig, registry)
		if err != nil {
			return nil, err
		}
		// On a duplicate logical name the last binding wins but the first
		// declaration keeps its position.
		if _, exists := t.columns[column.name]; !exists {
			t.order = append(t.order, column.name)
		}
		t.columns[column.name] = column
	}
	return t, nil
}

// Name returns the table name in its configured spelling.
func (t *Table) Name() string {
	return t.name
}

// FindColumn returns the encrypt column for a logical column name. Unlike
// table names, column names match exactly with no case folding.
func (t *Table) FindColumn(columnName string) (*Column, bool) {
	column, ok := t.columns[columnName]
	return column, ok
}

// GetColumn is FindColumn failing with ErrColumnNotFound when the column is
// not configured.
func (t *Table) GetColumn(columnName string) (*Column, error) {
	column, ok := t.columns[columnName]
	if !ok {
		return nil, newColumnNotFoundError(t.name, columnName)
	}
	return column, nil
}

// IsEncryptColumn reports whether the logical column is configured for
// encryption on this table.
func (t *Table) IsEncryptColumn(columnName string) bool {
	_, ok := t.columns[columnName]
	return ok
}

// Columns returns the encrypt columns in declaration order.
func (t *Table) Columns() []*Column {
	columns := make([]*Column, 0, len(t.order))
	for _, name := range t.order {
		columns = append(columns, t.columns[name])
	}
	return columns
}

// LogicalColumns returns the logical column names in declaration order.
func (t *Table) LogicalColumns() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// FindAssistedQueryEncryptor returns the assisted-query algorithm bound to a
// logical column, if both the column and the binding exist.
func (t *Table) FindAssistedQueryEncryptor(columnName string) (AssistedQueryAlgorithm, bool) {
	column, ok := t.columns[columnName]
	if !ok {
		return nil, false
	}
	return column.FindAssistedQueryEncryptor()
}

// FindLikeQueryEncryptor returns the like-query algorithm bound to a logical
// column, if both the column and the binding exist.
func (t *Table) FindLikeQueryEncryptor(columnName string) (LikeQueryAlgorithm, bool) {
	column, ok := t.columns[columnName]
	if !ok {
		return nil, false
	}
	return column.FindLikeQueryEncryptor()
}
