package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterAll(f *Filter, chunks ...string) string {
	var out []byte
	for _, c := range chunks {
		out = append(out, f.Apply([]byte(c))...)
	}
	out = append(out, f.Flush()...)
	return string(out)
}

func TestFilterDropsFetchSummary(t *testing.T) {
	input := "From x\n   aaa..bbb  m -> m\n * [new branch] n -> n\nReceived objects\n"

	got := filterAll(NewFilter("programname"), input)
	assert.Equal(t, "programname: Received objects\n", got)
}

func TestFilterKeepsAndTagsOrdinaryLines(t *testing.T) {
	got := filterAll(NewFilter("gitmirror"), "Cloning into bare repository...\nremote: done\n")
	assert.Equal(t, "gitmirror: Cloning into bare repository...\ngitmirror: remote: done\n", got)
}

func TestFilterCarriageReturnTerminatesLines(t *testing.T) {
	// Progress output uses \r; each segment is its own line.
	got := filterAll(NewFilter("gitmirror"), "Receiving objects:  10%\rReceiving objects: 100%\r")
	assert.Equal(t, "gitmirror: Receiving objects:  10%\rgitmirror: Receiving objects: 100%\r", got)
}

func TestFilterChunkBoundarySafe(t *testing.T) {
	input := "From origin\n   12ab..34cd  main -> main\nresolving deltas\nFetch done\nok\n"

	whole := filterAll(NewFilter("gitmirror"), input)

	// Every possible split point must give the same output.
	for i := 0; i <= len(input); i++ {
		split := filterAll(NewFilter("gitmirror"), input[:i], input[i:])
		assert.Equalf(t, whole, split, "split at byte %d", i)
	}

	// Byte-at-a-time as the degenerate case.
	f := NewFilter("gitmirror")
	var bytewise []byte
	for i := range input {
		bytewise = append(bytewise, f.Apply([]byte{input[i]})...)
	}
	bytewise = append(bytewise, f.Flush()...)
	assert.Equal(t, whole, string(bytewise))
}

func TestFilterIdempotentOnCleanInput(t *testing.T) {
	input := "From x\nerror: could not fetch\nwarning: something\n"

	once := filterAll(NewFilter("gitmirror"), input)
	twice := filterAll(NewFilter("gitmirror"), once)
	assert.Equal(t, once, twice)
}

func TestFilterStatePersistsAcrossChunks(t *testing.T) {
	f := NewFilter("gitmirror")

	// The drop decision is made in the first chunk, the body arrives later.
	out := string(f.Apply([]byte("F")))
	out += string(f.Apply([]byte("rom somewhere\nkeep")))
	out += string(f.Apply([]byte(" this\n")))
	out += string(f.Flush())

	assert.Equal(t, "gitmirror: keep this\n", out)
}

func TestFilterFlushRecoversPartialTagMatch(t *testing.T) {
	f := NewFilter("gitmirror")

	// "git" is a prefix of the tag, so it is held back until the stream ends.
	out := string(f.Apply([]byte("git")))
	assert.Empty(t, out)
	assert.Equal(t, "gitmirror: git", string(f.Flush()))
}

func TestFilterTagsEmptyLines(t *testing.T) {
	got := filterAll(NewFilter("gitmirror"), "\n")
	assert.Equal(t, "gitmirror: \n", got)
}
