package cli

import (
	"path/filepath"
	"testing"
)

func TestGraphDocRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	doc := graphDoc{
		RunID:    "test-run",
		Vertices: []string{"a", "b", "c"},
		Edges:    [][2]string{{"a", "b"}, {"b", "c"}},
	}
	if err := writeGraphDoc(path, doc); err != nil {
		t.Fatalf("writeGraphDoc: %v", err)
	}

	got, err := readGraphDoc(path)
	if err != nil {
		t.Fatalf("readGraphDoc: %v", err)
	}
	if got.RunID != doc.RunID || len(got.Vertices) != 3 || len(got.Edges) != 2 {
		t.Fatalf("round-trip mismatch: got %+v", got)
	}
}

func TestToGraphAndFromGraph(t *testing.T) {
	doc := graphDoc{
		Vertices: []string{"a", "b"},
		Edges:    [][2]string{{"a", "b"}},
	}
	g, err := doc.toGraph()
	if err != nil {
		t.Fatalf("toGraph: %v", err)
	}
	if g.VertexCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("got V=%d E=%d, want V=2 E=1", g.VertexCount(), g.EdgeCount())
	}

	back := fromGraph(g)
	if len(back.Vertices) != 2 || len(back.Edges) != 1 {
		t.Fatalf("fromGraph mismatch: %+v", back)
	}
}

func TestReadGraphDoc_MissingFile(t *testing.T) {
	if _, err := readGraphDoc(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("want error for missing file")
	}
}
