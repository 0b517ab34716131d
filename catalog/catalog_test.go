package catalog

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/silverspace/go-silverspace/core"
)

func sampleMovies() []core.Movie {
	return []core.Movie{
		{ExternalID: "100", Title: "Alpha"},
		{ExternalID: "200", Title: "Beta"},
		{ExternalID: "300", Title: "Gamma"},
	}
}

func sampleSimilarity() [][]float64 {
	return [][]float64{
		{1.0, 0.6, 0.2},
		{0.6, 1.0, 0.4},
		{0.2, 0.4, 1.0},
	}
}

func TestNewCatalogNormalizesIndices(t *testing.T) {
	movies := sampleMovies()
	// Indices in input are untrusted; position wins.
	movies[0].Index = 7
	movies[2].Index = -1

	c := NewCatalog(movies)
	for i := 0; i < c.Len(); i++ {
		if c.At(i).Index != i {
			t.Errorf("At(%d).Index = %d, want %d", i, c.At(i).Index, i)
		}
	}
}

func TestFindByTitle(t *testing.T) {
	c := NewCatalog(sampleMovies())

	m, ok := c.FindByTitle("Beta")
	if !ok {
		t.Fatal("FindByTitle(Beta) not found")
	}
	if m.Index != 1 || m.ExternalID != "200" {
		t.Errorf("FindByTitle(Beta) = %+v", m)
	}

	if _, ok := c.FindByTitle("Delta"); ok {
		t.Error("FindByTitle(Delta) found, want miss")
	}
}

func TestFindByTitleDuplicateKeepsFirst(t *testing.T) {
	c := NewCatalog([]core.Movie{
		{ExternalID: "1", Title: "Twin"},
		{ExternalID: "2", Title: "Twin"},
	})

	m, ok := c.FindByTitle("Twin")
	if !ok {
		t.Fatal("FindByTitle(Twin) not found")
	}
	if m.Index != 0 {
		t.Errorf("FindByTitle(Twin).Index = %d, want 0", m.Index)
	}
}

func TestTitles(t *testing.T) {
	c := NewCatalog(sampleMovies())
	want := []string{"Alpha", "Beta", "Gamma"}
	if got := c.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := NewCatalog(sampleMovies())
	sim := sampleSimilarity()

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, c, sim); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	got, gotSim, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if !reflect.DeepEqual(got.Movies(), c.Movies()) {
		t.Errorf("movies = %v, want %v", got.Movies(), c.Movies())
	}
	if !reflect.DeepEqual(gotSim, sim) {
		t.Errorf("similarity = %v, want %v", gotSim, sim)
	}
}

func TestDecodeSnapshotEmpty(t *testing.T) {
	_, _, err := DecodeSnapshot(bytes.NewBufferString(`{"movies":[],"similarity":[]}`))
	if err == nil {
		t.Error("DecodeSnapshot(empty) = nil, want error")
	}
}
