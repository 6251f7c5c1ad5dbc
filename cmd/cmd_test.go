package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentimath/mentimath/internal/quiz"
	"github.com/mentimath/mentimath/internal/radicals"
)

// resetFlags restores every flag to its default so tests don't leak state
// through the package-level command tree.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--log-level=off"))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mentimath (devel)\n", out)
}

func TestRadicalsWritesNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	out, err := execute(t, "radicals", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, radicals.Document, string(data))
}

func TestRadicalsEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.txt")
	t.Setenv("MENTIMATH_RADICALS_PATH", path)

	_, err := execute(t, "radicals")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRadicalsMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "note.txt")
	_, err := execute(t, "radicals", "--out", path)
	assert.Error(t, err)
}

func TestRadicalsSimplify(t *testing.T) {
	out, err := execute(t, "radicals", "72", "49", "30")
	require.NoError(t, err)
	assert.Equal(t, "√72 = √(36 × 2) = 6√2\n√49 = 7\n√30 is already in simplest form\n", out)

	_, err = execute(t, "radicals", "abc")
	assert.Error(t, err)
}

func TestMalformedSamplesEnvFails(t *testing.T) {
	t.Setenv("MENTIMATH_SAMPLES", "many")
	_, err := execute(t, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestQuizList(t *testing.T) {
	out, err := execute(t, "quiz", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "geometry")
	assert.Contains(t, out, "normal")
}

func TestQuizCheckPerfect(t *testing.T) {
	bank, err := quiz.LoadBank("geometry")
	require.NoError(t, err)

	args := []string{"quiz", "check", "geometry"}
	for _, q := range bank.Questions {
		args = append(args, strconv.Itoa(q.AnswerIndex()+1))
	}
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Your Score: 7/7")
}

func TestQuizCheckByText(t *testing.T) {
	bank, err := quiz.LoadBank("normal")
	require.NoError(t, err)

	args := []string{"quiz", "check", "normal"}
	for _, q := range bank.Questions {
		args = append(args, q.Options[0])
	}
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Your Score: ")
}

func TestQuizCheckWrongCount(t *testing.T) {
	_, err := execute(t, "quiz", "check", "geometry", "1")
	assert.Error(t, err)

}

func TestQuizAnswersRejectsUnknownBank(t *testing.T) {
	_, err := execute(t, "quiz", "answers", "calculus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid argument "calculus"`)
}

func TestQuizCheckOneWrong(t *testing.T) {
	bank, err := quiz.LoadBank("geometry")
	require.NoError(t, err)

	args := []string{"quiz", "check", "geometry"}
	for i, q := range bank.Questions {
		pick := q.AnswerIndex()
		if i == 0 {
			pick = (pick + 1) % len(q.Options)
		}
		args = append(args, strconv.Itoa(pick+1))
	}
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Q1: Incorrect. Correct answer: AAA")
	assert.Contains(t, out, "Your Score: 6/7")
}

func TestPlotSimilarityPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.png")
	out, err := execute(t, "plot", "similarity", "--scale-factor", "2", "--out", path, "--width", "200", "--height", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.FileExists(t, path)
}

func TestPlotSimilarityInvalidAngles(t *testing.T) {
	_, err := execute(t, "plot", "similarity", "--angle1", "120", "--angle2", "70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Angles must sum to 180°")
}

func TestPlotRejectsOutOfRange(t *testing.T) {
	_, err := execute(t, "plot", "normal", "--sigma", "0")
	assert.Error(t, err)
}

func TestPlotNormalTerminal(t *testing.T) {
	out, err := execute(t, "plot", "normal", "--mu", "1", "--sigma", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Peak density")
}

func TestPlotCongruenceNotice(t *testing.T) {
	out, err := execute(t, "plot", "congruence")
	require.NoError(t, err)
	assert.Contains(t, out, "The triangles are congruent!")
}

func TestQuizAnswers(t *testing.T) {
	out, err := execute(t, "quiz", "answers", "normal")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Where is the peak")
	assert.Contains(t, out, "1) At the mean")
}
