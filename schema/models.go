// Package schema defines the relational model of the morphology store:
// enumerated grammatical categories, sandhi rules, verb and nominal
// paradigm data, and the inflected forms generated from them.
package schema

// Part-of-speech tag ids. The tags table is materialized from these
// constants at the start of every build, so the ids are stable across
// stores.
const (
	TagNoun int64 = iota + 1
	TagPronoun
	TagAdjective
	TagIndeclinable
	TagVerb
	TagGerund
	TagInfinitive
	TagParticiple
)

// Tag is a part-of-speech label referenced by stems and words.
type Tag struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;size:255"`
}

// TableName returns the table name for Tag.
func (Tag) TableName() string { return "tags" }

// Tags returns the fixed part-of-speech rows in id order.
func Tags() []Tag {
	return []Tag{
		{ID: TagNoun, Name: "noun"},
		{ID: TagPronoun, Name: "pronoun"},
		{ID: TagAdjective, Name: "adjective"},
		{ID: TagIndeclinable, Name: "indeclinable"},
		{ID: TagVerb, Name: "verb"},
		{ID: TagGerund, Name: "gerund"},
		{ID: TagInfinitive, Name: "infinitive"},
		{ID: TagParticiple, Name: "participle"},
	}
}

// SandhiRule is one euphonic combination rule: first + second -> result.
type SandhiRule struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	RuleType int64  `gorm:"column:rule_type;index"`
	First    string `gorm:"column:first;size:255"`
	Second   string `gorm:"column:second;size:255"`
	Result   string `gorm:"column:result;size:255"`
}

// TableName returns the table name for SandhiRule.
func (SandhiRule) TableName() string { return "sandhi_rules" }

// Indeclinable is an uninflected word.
type Indeclinable struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;index;size:255"`
}

// TableName returns the table name for Indeclinable.
func (Indeclinable) TableName() string { return "indeclinables" }

// VerbPrefix is a preverb that can attach to a root.
type VerbPrefix struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;index;size:255"`
}

// TableName returns the table name for VerbPrefix.
func (VerbPrefix) TableName() string { return "verb_prefixes" }

// VerbEnding is a personal ending keyed by mode, voice, person, number,
// and the ending category it attaches to.
type VerbEnding struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;index;size:255"`
	Category string `gorm:"column:category;size:255"`
	PersonID int64  `gorm:"column:person_id"`
	NumberID int64  `gorm:"column:number_id"`
	ModeID   int64  `gorm:"column:mode_id"`
	VoiceID  int64  `gorm:"column:voice_id"`
}

// TableName returns the table name for VerbEnding.
func (VerbEnding) TableName() string { return "verb_endings" }

// Root is a verb root. Homonymous roots share a name and are told apart
// by the homonym index carried in the resource files; only the name is
// persisted.
type Root struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name;index;size:255"`
}

// TableName returns the table name for Root.
func (Root) TableName() string { return "roots" }

// Paradigm pairs a root with one verb class and voice it conjugates in.
type Paradigm struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	RootID   int64 `gorm:"column:root_id;index"`
	VclassID int64 `gorm:"column:vclass_id"`
	VoiceID  int64 `gorm:"column:voice_id"`
}

// TableName returns the table name for Paradigm.
func (Paradigm) TableName() string { return "paradigms" }

// Verb is one inflected verb form. VclassID is null when the source data
// does not attribute the form to a class.
type Verb struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;index;size:255"`
	RootID   int64  `gorm:"column:root_id;index"`
	VclassID *int64 `gorm:"column:vclass_id"`
	PersonID int64  `gorm:"column:person_id"`
	NumberID int64  `gorm:"column:number_id"`
	ModeID   int64  `gorm:"column:mode_id"`
	VoiceID  int64  `gorm:"column:voice_id"`
}

// TableName returns the table name for Verb.
func (Verb) TableName() string { return "verbs" }

// ParticipleStem is a participial stem derived from a root.
type ParticipleStem struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"column:name;index;size:255"`
	RootID  int64  `gorm:"column:root_id;index"`
	ModeID  int64  `gorm:"column:mode_id"`
	VoiceID int64  `gorm:"column:voice_id"`
}

// TableName returns the table name for ParticipleStem.
func (ParticipleStem) TableName() string { return "participle_stems" }

// Gerund is an uninflected absolutive form of a root.
type Gerund struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;index;size:255"`
	RootID int64  `gorm:"column:root_id;index"`
}

// TableName returns the table name for Gerund.
func (Gerund) TableName() string { return "gerunds" }

// Infinitive is an infinitive form of a root.
type Infinitive struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;index;size:255"`
	RootID int64  `gorm:"column:root_id;index"`
}

// TableName returns the table name for Infinitive.
func (Infinitive) TableName() string { return "infinitives" }

// NominalEnding is a case ending for one stem class. CaseID and NumberID
// are null for endings restricted to compounds, which carry neither.
type NominalEnding struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;size:255"`
	Stem       string `gorm:"column:stem;index;size:255"`
	GenderID   int64  `gorm:"column:gender_id"`
	CaseID     *int64 `gorm:"column:case_id"`
	NumberID   *int64 `gorm:"column:number_id"`
	Compounded bool   `gorm:"column:compounded;default:false"`
}

// TableName returns the table name for NominalEnding.
func (NominalEnding) TableName() string { return "nominal_endings" }

// Stem is a nominal stem. PosID discriminates nouns, adjectives, and
// pronoun stems sharing the table; GendersID names the gender group the
// stem declines in and is null for adjective stems, which decline in all
// genders.
type Stem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PosID     int64  `gorm:"column:pos_id;index"`
	Name      string `gorm:"column:name;index;size:255"`
	GendersID *int64 `gorm:"column:genders_id"`
}

// TableName returns the table name for Stem.
func (Stem) TableName() string { return "stems" }

// StemIrregularity marks a stem whose forms are enumerated explicitly.
// FullyDescribed reports whether the enumerated forms are the complete
// paradigm or only the irregular part of it.
type StemIrregularity struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	StemID         int64 `gorm:"column:stem_id;index"`
	FullyDescribed bool  `gorm:"column:fully_described;default:false"`
}

// TableName returns the table name for StemIrregularity.
func (StemIrregularity) TableName() string { return "stem_irregularities" }

// Word is one explicitly enumerated inflected nominal form. PosID mirrors
// the owning stem's part of speech.
type Word struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	StemID   int64  `gorm:"column:stem_id;index"`
	PosID    int64  `gorm:"column:pos_id;index"`
	Name     string `gorm:"column:name;index;size:255"`
	GenderID int64  `gorm:"column:gender_id"`
	CaseID   int64  `gorm:"column:case_id"`
	NumberID int64  `gorm:"column:number_id"`
}

// TableName returns the table name for Word.
func (Word) TableName() string { return "words" }

// PrefixedRoot is a compound root tied to the base root it inflects as.
type PrefixedRoot struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"column:name;index;size:255"`
	BasisID int64  `gorm:"column:basis_id;index"`
}

// TableName returns the table name for PrefixedRoot.
func (PrefixedRoot) TableName() string { return "prefixed_roots" }

// PrefixedRootPrefix records the prefixes of a compound root in order.
type PrefixedRootPrefix struct {
	PrefixedRootID int64 `gorm:"column:prefixed_root_id;primaryKey"`
	Position       int   `gorm:"column:position;primaryKey"`
	PrefixID       int64 `gorm:"column:prefix_id"`
}

// TableName returns the table name for PrefixedRootPrefix.
func (PrefixedRootPrefix) TableName() string { return "prefixed_root_prefixes" }
