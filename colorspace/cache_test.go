package colorspace

import (
	"sync"
	"testing"
)

func TestCacheMatchesDerive(t *testing.T) {
	var cache Cache
	for _, a := range testSpaces {
		for _, b := range testSpaces {
			want, err := Derive(a, b)
			if err != nil {
				t.Fatal(err)
			}
			for range 2 {
				got, err := cache.Derive(a, b)
				if err != nil {
					t.Fatal(err)
				}
				if got != want {
					t.Errorf("%s -> %s: cached conversion differs", a, b)
				}
			}
		}
	}
	if n, want := cache.Len(), len(testSpaces)*len(testSpaces); n != want {
		t.Errorf("cache holds %d entries, want %d", n, want)
	}

	cache.Reset()
	if cache.Len() != 0 {
		t.Error("Reset left entries behind")
	}
}

func TestCacheKeysByValue(t *testing.T) {
	var cache Cache
	if _, err := cache.Derive(testSRGB, testP3); err != nil {
		t.Fatal(err)
	}
	renamed := testSRGB.WithName("web")
	conv, err := cache.Derive(renamed, testP3)
	if err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 1 {
		t.Errorf("equal spaces produced %d entries", cache.Len())
	}
	if conv.Source().Name() != "web" {
		t.Errorf("source name %q, want the caller's", conv.Source().Name())
	}

	if _, err := cache.DeriveWith(testSRGB, testP3, CAT02); err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 2 {
		t.Errorf("cone space is not part of the key")
	}
}

func TestCacheConcurrent(t *testing.T) {
	var cache Cache
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for _, a := range testSpaces {
				for _, b := range testSpaces {
					conv, err := cache.Derive(a, b)
					if err != nil {
						t.Error(err)
						return
					}
					want, _ := Derive(a, b)
					if conv.Matrix() != want.Matrix() {
						t.Errorf("%s -> %s: wrong matrix", a, b)
					}
				}
			}
		})
	}
	wg.Wait()
}
