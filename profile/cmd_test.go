package profile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"colorconv/iccspace"
	"colorconv/spaces"
)

func TestWrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "adobe.icc")
	c := &CLICmd{Space: "adobe-rgb", Output: dest}
	if err := c.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	s, err := iccspace.FromProfile(data)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(spaces.AdobeRGB) {
		t.Errorf("got %v", s)
	}

	// refuses to overwrite
	if err := c.Validate(nil); err == nil {
		t.Error("existing file accepted")
	}
	c.Force = true
	if err := c.Validate(nil); err != nil {
		t.Error(err)
	}
}

func TestStdout(t *testing.T) {
	c := &CLICmd{Space: "srgb"}
	if err := c.Validate(nil); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := c.Run(&out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes()[36:40], []byte("acsp")) {
		t.Errorf("not an ICC profile")
	}
}

func TestUnsupported(t *testing.T) {
	c := &CLICmd{Space: "bt2100-pq"}
	if err := c.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(&bytes.Buffer{}); err == nil {
		t.Error("PQ profile written")
	}
}
