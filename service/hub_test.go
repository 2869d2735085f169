package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	deps     []string
	log      *[]string
	initArgs []any
	startErr error
	stops    int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(args ...any) error {
	f.initArgs = args
	*f.log = append(*f.log, "init:"+f.name)
	return nil
}
func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}
func (f *fakeService) Stop() error {
	f.stops++
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubOrdersByDependency(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "audio", deps: []string{"store"}, log: &log}, true))
	require.NoError(t, h.Register(&fakeService{name: "store", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "input", log: &log}))

	require.NoError(t, h.InitAll())
	assert.Equal(t, []string{"input", "store", "audio"}, h.Order())

	require.NoError(t, h.StartAll())
	h.StopAll()
	assert.Equal(t, []string{
		"init:input", "init:store", "init:audio",
		"start:input", "start:store", "start:audio",
		"stop:audio", "stop:store", "stop:input",
	}, log)

	audio := MustGet[*fakeService](h, "audio")
	assert.Equal(t, []any{true}, audio.initArgs)
}

func TestHubDuplicateAndMissing(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &log}))
	assert.Error(t, h.Register(&fakeService{name: "a", log: &log}))
	assert.ErrorContains(t, h.InitAll(), "ghost")

	assert.Panics(t, func() { MustGet[*fakeService](h, "nope") })
}

func TestHubCycle(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log}))
	assert.ErrorIs(t, h.InitAll(), ErrCycle)
}

func TestHubStartRollback(t *testing.T) {
	var log []string
	boom := errors.New("no device")
	h := NewHub(nil)
	first := &fakeService{name: "a", log: &log}
	require.NoError(t, h.Register(first))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log, startErr: boom}))

	require.NoError(t, h.InitAll())
	assert.ErrorIs(t, h.StartAll(), boom)
	assert.Equal(t, 1, first.stops)

	h.StopAll()
	assert.Equal(t, 1, first.stops, "rolled back services are not stopped twice")
}
