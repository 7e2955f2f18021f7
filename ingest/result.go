package ingest

// Stage names, used in logs, error chains, and the run result.
const (
	StageTags                = "tags"
	StageEnums               = "enums"
	StageSandhi              = "sandhi"
	StageIndeclinables       = "indeclinables"
	StageVerbPrefixes        = "verb-prefixes"
	StageVerbEndings         = "verb-endings"
	StageRoots               = "roots"
	StageVerbs               = "verbs"
	StageParticipleStems     = "participle-stems"
	StageGerunds             = "gerunds"
	StageInfinitives         = "infinitives"
	StageNominalEndings      = "nominal-endings"
	StageNounStems           = "noun-stems"
	StageIrregularNouns      = "irregular-nouns"
	StageAdjectiveStems      = "adjective-stems"
	StageIrregularAdjectives = "irregular-adjectives"
	StagePronouns            = "pronouns"
	StagePrefixedRoots       = "prefixed-roots"
)

// Result reports what a pipeline run created, wrote, and skipped.
type Result struct {
	// Created lists the tables the schema step created, in creation
	// order.
	Created []string

	// Rows counts the rows written by each stage.
	Rows map[string]int

	// Skipped holds the unresolved root keys of each stage that
	// tolerates missing roots. Stages with nothing skipped have no
	// entry.
	Skipped map[string]SkipSet
}

func newResult() *Result {
	return &Result{
		Rows:    make(map[string]int),
		Skipped: make(map[string]SkipSet),
	}
}

func (r *Result) add(stage string, rows int) {
	r.Rows[stage] += rows
}

func (r *Result) skip(stage string, skipped SkipSet) {
	if skipped.Len() == 0 {
		return
	}
	r.Skipped[stage] = skipped
}

// TotalRows returns the rows written across all stages.
func (r *Result) TotalRows() int {
	total := 0
	for _, rows := range r.Rows {
		total += rows
	}
	return total
}

// SkipCount returns the distinct unresolved root keys across all stages.
func (r *Result) SkipCount() int {
	total := 0
	for _, skipped := range r.Skipped {
		total += skipped.Len()
	}
	return total
}
