package vocab

import (
	"strings"
	"testing"
)

func testTable() Table {
	return Table{
		ID:   "fruits",
		Name: "Fruits",
		Columns: []Column{
			{ID: "word", Name: "Word"},
			{ID: "def", Name: "Definition"},
		},
		Rows: []Row{
			{ID: "r1", Cols: map[string]string{"word": "Apple", "def": "A red fruit"}},
			{ID: "r2", Cols: map[string]string{"word": "Banana", "def": "  "}},
		},
		Relations: []Relation{
			{
				ID:                "word-def",
				Name:              "Word → Definition",
				QuestionColumnIDs: []string{"word"},
				AnswerColumnIDs:   []string{"def"},
				CompatibleModes:   []StudyMode{ModeMultipleChoice, ModeTyping},
			},
			{
				ID:                "sentence",
				Name:              "Sentence",
				QuestionColumnIDs: []string{"def"},
				CompatibleModes:   []StudyMode{ModeScrambled},
			},
		},
	}
}

func TestRelationSupports(t *testing.T) {
	tbl := testTable()
	wordDef, _ := tbl.Relation("word-def")
	sentence, _ := tbl.Relation("sentence")

	tests := []struct {
		name string
		rel  *Relation
		mode StudyMode
		want bool
	}{
		{"declared mode", wordDef, ModeTyping, true},
		{"undeclared mode", wordDef, ModeTrueFalse, false},
		{"scramble without answers", sentence, ModeScrambled, true},
		{"no answers blocks typing", &Relation{QuestionColumnIDs: []string{"a"}, CompatibleModes: []StudyMode{ModeTyping}}, ModeTyping, false},
		{"no questions blocks everything", &Relation{AnswerColumnIDs: []string{"a"}, CompatibleModes: []StudyMode{ModeTyping}}, ModeTyping, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rel.Supports(tt.mode); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestRowValues_SkipsBlank(t *testing.T) {
	tbl := testTable()
	row, ok := tbl.Row("r2")
	if !ok {
		t.Fatal("row r2 not found")
	}
	got := row.Values([]string{"word", "def", "missing"})
	if len(got) != 1 || got[0] != "Banana" {
		t.Errorf("Values = %v, want [Banana]", got)
	}
}

func TestTableLookups(t *testing.T) {
	tbl := testTable()
	if _, ok := tbl.Relation("nope"); ok {
		t.Error("expected unknown relation lookup to fail")
	}
	if got := tbl.ColumnName("def"); got != "Definition" {
		t.Errorf("ColumnName(def) = %q, want Definition", got)
	}
	if got := tbl.ColumnName("zzz"); got != "zzz" {
		t.Errorf("ColumnName(zzz) = %q, want fallback to ID", got)
	}
	if ids := tbl.RowIDs(); len(ids) != 2 || ids[0] != "r1" {
		t.Errorf("RowIDs = %v", ids)
	}
	tables := []Table{tbl}
	if _, ok := FindTable(tables, "fruits"); !ok {
		t.Error("FindTable should find fruits")
	}
}

func TestValidate_ValidTablePasses(t *testing.T) {
	tbl := testTable()
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidate_DetectsProblems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr string
	}{
		{"duplicate row", func(tb *Table) { tb.Rows = append(tb.Rows, Row{ID: "r1"}) }, "duplicate row ID"},
		{"dangling column", func(tb *Table) { tb.Relations[0].AnswerColumnIDs = []string{"ghost"} }, "ghost"},
		{"unknown mode", func(tb *Table) { tb.Relations[0].CompatibleModes = []StudyMode{"karaoke"} }, "study_mode"},
		{"answerless typing", func(tb *Table) { tb.Relations[1].CompatibleModes = []StudyMode{ModeTyping} }, "no answer columns"},
		{"missing name", func(tb *Table) { tb.Name = "" }, "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := testTable()
			tt.mutate(&tbl)
			err := tbl.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusPerfect.Label(); got != "Perfect" {
		t.Errorf("Label = %q, want Perfect", got)
	}
	if got := FlashcardStatus("").Label(); got != "New" {
		t.Errorf("empty Label = %q, want New", got)
	}
}

func TestRowStatsAccuracy(t *testing.T) {
	if got := (RowStats{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy with no attempts = %f, want 0", got)
	}
	if got := (RowStats{Correct: 3, Incorrect: 1}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", got)
	}
}

func TestSources(t *testing.T) {
	tbl := testTable()
	other := Table{ID: "verbs", Relations: []Relation{{ID: "word-def", QuestionColumnIDs: []string{"a"}, AnswerColumnIDs: []string{"b"}, CompatibleModes: []StudyMode{ModeTyping}}}}
	tables := []Table{tbl, other}

	all := Sources(tables, "")
	if len(all) != 3 {
		t.Fatalf("Sources(all) = %d, want 3", len(all))
	}

	scr := Sources(tables, ModeScrambled)
	if len(scr) != 1 || scr[0] != (Source{TableID: "fruits", RelationID: "sentence"}) {
		t.Errorf("Sources(scrambled) = %v", scr)
	}

	tableIDs, relIDs := SplitSources(Sources(tables, ModeTyping))
	if strings.Join(tableIDs, ",") != "fruits,verbs" {
		t.Errorf("tableIDs = %v", tableIDs)
	}
	if strings.Join(relIDs, ",") != "word-def" {
		t.Errorf("relationIDs = %v", relIDs)
	}
}
