package models

// Source kinds.
const (
	KindFile  = "file"
	KindURL   = "url"
	KindSQL   = "sql"
	KindMongo = "mongo"
)

// Data formats used by sources and sinks.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatSQL   = "sql"
	FormatMongo = "mongo"
)

// SourceDescriptor tells the extractor where a table comes from.
// For sql and mongo kinds, Location is a table or collection name and Format is ignored.
type SourceDescriptor struct {
	Location string `yaml:"location" json:"location"`
	Kind     string `yaml:"kind" json:"kind"`
	Format   string `yaml:"format" json:"format"`
}

// SinkDescriptor tells the loader where a table goes.
type SinkDescriptor struct {
	Format    string `yaml:"format" json:"format"`
	TableName string `yaml:"tableName,omitempty" json:"tableName,omitempty"`
}

type NewColumn struct {
	Name  string      `yaml:"name" json:"name"`
	Value interface{} `yaml:"value" json:"value"`
}

// ColumnEdit restricts and extends the columns of a table.
// An empty Keep keeps every column.
type ColumnEdit struct {
	Keep []string    `yaml:"keep,omitempty" json:"keep,omitempty"`
	Add  []NewColumn `yaml:"add,omitempty" json:"add,omitempty"`
}

func (e ColumnEdit) IsEmpty() bool {
	return len(e.Keep) == 0 && len(e.Add) == 0
}

// Job is one pipeline run as stored in a job file.
type Job struct {
	Source SourceDescriptor `yaml:"source" json:"source"`
	Sink   SinkDescriptor   `yaml:"sink" json:"sink"`
	Edit   ColumnEdit       `yaml:"edit,omitempty" json:"edit,omitempty"`
}
