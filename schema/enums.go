package schema

// Lookup keys for the enumerated grammatical categories. Ingestion builds
// one abbreviation-to-id map per key, and the registry mirrors the same
// keys when reading a populated store back.
const (
	CategoryModification = "modification"
	CategoryVclass       = "vclass"
	CategoryPerson       = "person"
	CategoryNumber       = "number"
	CategoryMode         = "mode"
	CategoryVoice        = "voice"
	CategoryGender       = "gender"
	CategoryCase         = "case"
	CategorySandhiType   = "sandhi_type"
	CategoryGenderGroup  = "gender_group"
)

// EnumRow is the shared shape of every enumerated-category table: a full
// name plus the abbreviation other resource files refer to it by.
type EnumRow struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255"`
	Abbr string `gorm:"column:abbr;size:255"`
}

// Modification is a root modification category.
type Modification struct{ EnumRow }

// TableName returns the table name for Modification.
func (Modification) TableName() string { return "modifications" }

// VClass is a verb class (the ten traditional conjugation classes).
type VClass struct{ EnumRow }

// TableName returns the table name for VClass.
func (VClass) TableName() string { return "vclasses" }

// Person is a grammatical person.
type Person struct{ EnumRow }

// TableName returns the table name for Person.
func (Person) TableName() string { return "persons" }

// Number is a grammatical number (singular, dual, plural).
type Number struct{ EnumRow }

// TableName returns the table name for Number.
func (Number) TableName() string { return "numbers" }

// Mode is a verbal mode.
type Mode struct{ EnumRow }

// TableName returns the table name for Mode.
func (Mode) TableName() string { return "modes" }

// Voice is a verbal voice (parasmaipada, atmanepada).
type Voice struct{ EnumRow }

// TableName returns the table name for Voice.
func (Voice) TableName() string { return "voices" }

// Gender is a grammatical gender.
type Gender struct{ EnumRow }

// TableName returns the table name for Gender.
func (Gender) TableName() string { return "genders" }

// Case is a grammatical case.
type Case struct{ EnumRow }

// TableName returns the table name for Case.
func (Case) TableName() string { return "cases" }

// SandhiType is a class of sandhi rule.
type SandhiType struct{ EnumRow }

// TableName returns the table name for SandhiType.
func (SandhiType) TableName() string { return "sandhi_types" }

// GenderGroup is a named set of genders a nominal stem can inflect in.
type GenderGroup struct{ EnumRow }

// TableName returns the table name for GenderGroup.
func (GenderGroup) TableName() string { return "gender_groups" }

// GenderGroupMember links a gender group to one member gender.
type GenderGroupMember struct {
	GroupID  int64 `gorm:"column:group_id;primaryKey"`
	GenderID int64 `gorm:"column:gender_id;primaryKey"`
}

// TableName returns the table name for GenderGroupMember.
func (GenderGroupMember) TableName() string { return "gender_group_members" }

// GenderGroupDoc is the document name of the gender-group category in the
// enums resource. Gender groups load after the plain categories so that
// member genders can be resolved by abbreviation.
const GenderGroupDoc = "GenderGroup"

// EnumTable describes one plain enumerated category: the document name
// used in the enums resource, the in-memory lookup key, and the backing
// table.
type EnumTable struct {
	Doc      string
	Category string
	Table    string
}

// EnumTables returns the plain enumerated categories in load order.
// Gender groups are not listed; they carry membership data and load in a
// second pass.
func EnumTables() []EnumTable {
	return []EnumTable{
		{Doc: "Modification", Category: CategoryModification, Table: "modifications"},
		{Doc: "VClass", Category: CategoryVclass, Table: "vclasses"},
		{Doc: "Person", Category: CategoryPerson, Table: "persons"},
		{Doc: "Number", Category: CategoryNumber, Table: "numbers"},
		{Doc: "Mode", Category: CategoryMode, Table: "modes"},
		{Doc: "Voice", Category: CategoryVoice, Table: "voices"},
		{Doc: "Gender", Category: CategoryGender, Table: "genders"},
		{Doc: "Case", Category: CategoryCase, Table: "cases"},
		{Doc: "SandhiType", Category: CategorySandhiType, Table: "sandhi_types"},
	}
}
