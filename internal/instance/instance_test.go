package instance

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Instance
		wantErr bool
	}{
		{
			name: "valid",
			in:   Instance{Name: "ok", Capacity: 10, Items: []float64{3, 4, 5}},
		},
		{
			name:    "non-positive capacity",
			in:      Instance{Name: "bad", Capacity: 0, Items: []float64{1}},
			wantErr: true,
		},
		{
			name:    "non-positive weight",
			in:      Instance{Name: "bad", Capacity: 10, Items: []float64{0}},
			wantErr: true,
		},
		{
			name:    "weight exceeds capacity",
			in:      Instance{Name: "bad", Capacity: 10, Items: []float64{11}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLowerBound(t *testing.T) {
	in := Instance{Name: "x", Capacity: 10, Items: []float64{6, 6, 6}}
	if got := in.LowerBound(); got != 2 {
		t.Errorf("LowerBound() = %d, want 2", got)
	}
}

func TestLoadFile(t *testing.T) {
	content := "1\n" +
		"inst01\n" +
		"10 3 2\n" +
		"6\n" +
		"5\n" +
		"4\n"

	dir := t.TempDir()
	path := filepath.Join(dir, "bench.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	instances, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1", len(instances))
	}

	got := instances[0]
	if got.Name != "inst01" || got.Capacity != 10 || got.BestKnown != 2 || len(got.Items) != 3 {
		t.Errorf("parsed instance = %+v, want {inst01 10 [6 5 4] 2}", got)
	}
}

func TestLoadFile_RejectsMalformedCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.txt")
	if err := os.WriteFile(path, []byte("not-a-number\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed dataset count, got nil")
	}
}

func TestLoadFile_RejectsMissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
