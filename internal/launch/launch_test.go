package launch

import (
	"path/filepath"
	"testing"

	"baserun/internal/descriptor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingStarter captures the tokens it would have spawned with.
type recordingStarter struct {
	mode, flag, arg string
	err             error
}

func (s *recordingStarter) Launch(mode, flag, arg string) error {
	s.mode, s.flag, s.arg = mode, flag, arg
	return s.err
}

func TestDispatch_ServerForm(t *testing.T) {
	s := &recordingStarter{}
	err := Dispatch(descriptor.Server{Host: "apps01", RefName: "trade"}, false, s)
	require.NoError(t, err)
	assert.Equal(t, ModeEnterprise, s.mode)
	assert.Equal(t, FlagServer, s.flag)
	assert.Equal(t, `apps01\trade`, s.arg)
}

func TestDispatch_FileForm(t *testing.T) {
	s := &recordingStarter{}
	err := Dispatch(descriptor.File{Path: `c:\bases\trade`}, false, s)
	require.NoError(t, err)
	assert.Equal(t, FlagFile, s.flag)
	assert.Equal(t, `c:\bases\trade`, s.arg)
}

func TestDispatch_WebForm(t *testing.T) {
	s := &recordingStarter{}
	err := Dispatch(descriptor.Web{URL: "https://example.org/trade"}, false, s)
	require.NoError(t, err)
	assert.Equal(t, FlagWeb, s.flag)
	assert.Equal(t, "https://example.org/trade", s.arg)
}

func TestDispatch_DesignerOnlyChangesMode(t *testing.T) {
	for _, d := range []descriptor.Descriptor{
		descriptor.Server{Host: "h", RefName: "r"},
		descriptor.File{Path: "p"},
		descriptor.Web{URL: "u"},
	} {
		ent := &recordingStarter{}
		des := &recordingStarter{}
		require.NoError(t, Dispatch(d, false, ent))
		require.NoError(t, Dispatch(d, true, des))

		assert.Equal(t, ModeEnterprise, ent.mode)
		assert.Equal(t, ModeDesigner, des.mode)
		assert.Equal(t, ent.flag, des.flag)
		assert.Equal(t, ent.arg, des.arg)
	}
}

func TestDispatch_PropagatesStarterError(t *testing.T) {
	s := &recordingStarter{err: ErrStarterNotFound}
	err := Dispatch(descriptor.Server{Host: "h", RefName: "r"}, false, s)
	assert.ErrorIs(t, err, ErrStarterNotFound)
}

func TestExecStarter_MissingExecutable(t *testing.T) {
	s := ExecStarter{Path: filepath.Join(t.TempDir(), "1cestart")}
	err := s.Launch(ModeEnterprise, FlagFile, "p")
	assert.ErrorIs(t, err, ErrStarterNotFound)
}

func TestNewExecStarter_EmptyPathUsesPlatformDefault(t *testing.T) {
	s := NewExecStarter("")
	assert.Equal(t, defaultStarterPath, s.Path)

	s = NewExecStarter("/tmp/custom")
	assert.Equal(t, "/tmp/custom", s.Path)
}
