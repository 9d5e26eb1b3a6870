package services

import (
	"reflect"
	"testing"

	"desk-calculator/internal/calc"
	"desk-calculator/internal/history"
	"desk-calculator/internal/logger"
	"desk-calculator/internal/models"

	"github.com/spf13/afero"
)

func newTestService(t *testing.T, fs afero.Fs) (*CalculatorService, *history.Store) {
	t.Helper()
	log := logger.NewNop()
	store := history.NewStore(history.DefaultPath, history.WithFs(fs), history.WithLogger(log))
	service := NewCalculatorService(
		models.NewCalculatorState(),
		models.NewMemoryStack(),
		LoadHistory(store, log),
		store,
		log,
	)
	return service, store
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name       string
		num1, num2 string
		op         calc.Operator
		want       string
		wantEntry  string
	}{
		{"divide", "6", "3", calc.Divide, "2", "6 / 3 = 2"},
		{"divide by zero", "6", "0", calc.Divide, "Error: Cannot divide by zero", ""},
		{"sqrt blank second", "9", "", calc.Sqrt, "3", "9 √ = 3"},
		{"invalid input", "abc", "3", calc.Add, "Error: Invalid input", ""},
		{"sqrt negative", "-4", "", calc.Sqrt, "Error: Cannot sqrt negative number", ""},
		{"power", "2", "0.5", calc.Power, "1.4142135623730951", "2 ^ 0.5 = 1.4142135623730951"},
		{"overflowing operand", "1e400", "1", calc.Add, "inf", "1e400 + 1 = inf"},
		{"digit separator", "1_000", "1", calc.Add, "Error: Invalid input", ""},
		{"hex float", "0x1p3", "1", calc.Add, "Error: Invalid input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFs := afero.NewMemMapFs()
			service, _ := newTestService(t, memFs)

			service.SetOperands(tt.num1, tt.num2)
			if got := service.Calculate(tt.op); got != tt.want {
				t.Fatalf("Calculate = %q, want %q", got, tt.want)
			}
			if service.Result() != tt.want {
				t.Errorf("Result = %q, want %q", service.Result(), tt.want)
			}

			var wantHistory []string
			if tt.wantEntry != "" {
				wantHistory = []string{tt.wantEntry}
			}
			if got := service.History(); len(got) != len(wantHistory) || (len(got) > 0 && !reflect.DeepEqual(got, wantHistory)) {
				t.Errorf("History = %v, want %v", got, wantHistory)
			}

			data, _ := afero.ReadFile(memFs, history.DefaultPath)
			wantFile := ""
			if tt.wantEntry != "" {
				wantFile = tt.wantEntry + "\n"
			}
			if string(data) != wantFile {
				t.Errorf("history file = %q, want %q", data, wantFile)
			}
		})
	}
}

func TestHistorySurvivesRestart(t *testing.T) {
	memFs := afero.NewMemMapFs()
	service, _ := newTestService(t, memFs)

	inputs := []struct {
		num1, num2 string
		op         calc.Operator
	}{
		{"1", "2", calc.Add},
		{"5", "7", calc.Subtract},
		{"6", "0", calc.Divide},
		{"3", "4", calc.Multiply},
		{"16", "", calc.Sqrt},
	}
	for _, in := range inputs {
		service.SetOperands(in.num1, in.num2)
		service.Calculate(in.op)
	}
	want := []string{"1 + 2 = 3", "5 - 7 = -2", "3 * 4 = 12", "16 √ = 4"}
	if got := service.History(); !reflect.DeepEqual(got, want) {
		t.Fatalf("History = %v, want %v", got, want)
	}

	restarted, _ := newTestService(t, memFs)
	if got := restarted.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("History after restart = %v, want %v", got, want)
	}
}

func TestCalculateKeepsHistoryWhenPersistFails(t *testing.T) {
	service, _ := newTestService(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	service.SetOperands("6", "3")
	if got := service.Calculate(calc.Divide); got != "2" {
		t.Fatalf("Calculate = %q, want 2", got)
	}
	if got := service.History(); !reflect.DeepEqual(got, []string{"6 / 3 = 2"}) {
		t.Errorf("History = %v", got)
	}
	if stats := service.GetStats(); stats.PersistFails != 1 {
		t.Errorf("PersistFails = %d, want 1", stats.PersistFails)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	service, _ := newTestService(t, afero.NewMemMapFs())

	service.SetOperands("1", "4")
	service.Calculate(calc.Divide)
	if !service.StoreMemory() {
		t.Fatal("StoreMemory should accept numeric result")
	}

	service.SetOperands("2", "3")
	service.Calculate(calc.Add)
	if service.Result() != "5" {
		t.Fatalf("Result = %q, want 5", service.Result())
	}

	if !service.RecallMemory() {
		t.Fatal("RecallMemory should find stored value")
	}
	if service.Result() != "0.25" {
		t.Errorf("Result after recall = %q, want 0.25", service.Result())
	}

	service.ClearMemory()
	service.SetOperands("2", "3")
	service.Calculate(calc.Multiply)
	if service.RecallMemory() {
		t.Error("RecallMemory after clear should be a no-op")
	}
	if service.Result() != "6" {
		t.Errorf("Result after empty recall = %q, want 6", service.Result())
	}
}

func TestStoreMemoryIgnoresErrorResult(t *testing.T) {
	service, _ := newTestService(t, afero.NewMemMapFs())

	service.SetOperands("abc", "3")
	service.Calculate(calc.Add)
	if service.StoreMemory() {
		t.Error("StoreMemory should ignore an error result")
	}
	if service.StoreMemory() {
		t.Error("StoreMemory should ignore an error result on repeat")
	}
	if stats := service.GetStats(); stats.MemorySize != 0 {
		t.Errorf("MemorySize = %d, want 0", stats.MemorySize)
	}
}

func TestRecallLastOfSeveral(t *testing.T) {
	service, _ := newTestService(t, afero.NewMemMapFs())

	for _, num := range []string{"1", "2", "3"} {
		service.SetOperands(num, "0")
		service.Calculate(calc.Add)
		service.StoreMemory()
	}
	service.SetOperands("10", "10")
	service.Calculate(calc.Add)

	service.RecallMemory()
	if service.Result() != "3" {
		t.Errorf("Result = %q, want 3", service.Result())
	}
}

func TestGetStats(t *testing.T) {
	service, _ := newTestService(t, afero.NewMemMapFs())

	service.SetOperands("1", "1")
	service.Calculate(calc.Add)
	service.StoreMemory()
	service.SetOperands("1", "0")
	service.Calculate(calc.Divide)

	stats := service.GetStats()
	if stats.Evaluations != 2 || stats.Failures != 1 || stats.HistorySize != 1 || stats.MemorySize != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastOperator != calc.Divide {
		t.Errorf("LastOperator = %q, want /", stats.LastOperator)
	}
}
