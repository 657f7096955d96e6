package session

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/event"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/settings"
	"github.com/sasha-s/go-deadlock"
	"gopkg.in/yaml.v3"
)

// CurrentRecordingVer is the version of the recording format written by a Recorder.
const CurrentRecordingVer = "1"

// Header describes the character a recording was made with.
type Header struct {
	Name     string        `yaml:"name"`
	Spawn    [3]float32    `yaml:"spawn"`
	Settings settings.File `yaml:"settings"`
}

// SpawnPosition returns the spawn position of the recorded character.
func (h Header) SpawnPosition() mgl32.Vec3 {
	return mgl32.Vec3(h.Spawn)
}

// Recording is a decoded recording.
type Recording struct {
	Version string
	Header  Header

	Events []event.Event
}

// Recorder writes the input and the resulting state digest of every tick of a player. It is attached
// to the player as its handler.
type Recorder struct {
	player.NopHandler

	mu     deadlock.Mutex
	w      *bufio.Writer
	closer io.Closer
	err    error
	closed bool
}

// NewRecorder writes the recording header of the player to w and returns a Recorder writing its ticks
// to w. The player must not have been ticked yet. If w is an io.Closer it is closed with the Recorder.
func NewRecorder(w io.Writer, p *player.Player) (*Recorder, error) {
	if p.CurrentTick() != 0 {
		return nil, oerror.New("cannot record player %s after it started ticking", p.Name())
	}

	spawn := p.Character().Spawn
	hdr, err := yaml.Marshal(Header{
		Name:     p.Name(),
		Spawn:    [3]float32(spawn),
		Settings: settings.File{Settings: p.Settings(), Movement: *p.Config()},
	})
	if err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}

	r := &Recorder{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	r.w.WriteString(CurrentRecordingVer + "\n")
	r.w.WriteString(event.EventsVersion + "\n")
	binary.Write(r.w, binary.LittleEndian, uint32(len(hdr)))
	if _, err := r.w.Write(hdr); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRecording creates the file at path and starts recording the player to it.
func CreateRecording(path string, p *player.Player) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	r, err := NewRecorder(f, p)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// OnTick records the tick the player just ran.
func (r *Recorder) OnTick(p *player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.err != nil {
		return
	}

	in := p.LastInput()
	if p.PreferencesChanged() {
		prefs := p.Settings().Preferences()
		ev := event.PreferencesEvent{HoldWallclimb: prefs.HoldWallclimb, HoldWallrun: prefs.HoldWallrun}
		ev.EvTick = in.Tick()
		r.write(ev)
	}
	r.write(in)

	ev := event.TickEvent{Digest: Digest(p)}
	ev.EvTick = in.Tick()
	r.write(ev)
}

func (r *Recorder) write(ev event.Event) {
	if _, err := r.w.Write(ev.Encode()); err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first error the recorder ran into while writing.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close flushes the recording and closes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.w.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	if r.err != nil {
		return r.err
	}
	return err
}

// DecodeRecording decodes a recording. It returns an error if the recording could not be parsed, or if
// its version is not supported.
func DecodeRecording(rd io.Reader) (*Recording, error) {
	br := bufio.NewReader(rd)

	version, err := readLine(br)
	if err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}
	if version != CurrentRecordingVer {
		return nil, oerror.New(game.ErrorRecordingVersion, version, CurrentRecordingVer)
	}
	evVersion, err := readLine(br)
	if err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}
	if evVersion != event.EventsVersion {
		return nil, oerror.New(game.ErrorRecordingVersion, evVersion, event.EventsVersion)
	}

	var size uint32
	if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}
	hdr := make([]byte, size)
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}

	rec := &Recording{Version: version, Header: Header{Settings: settings.DefaultFile()}}
	if err := yaml.Unmarshal(hdr, &rec.Header); err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}
	if err := rec.Header.Settings.Validate(); err != nil {
		return nil, oerror.New(game.ErrorRecordingHeader, err)
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, oerror.New("unable to read recording: %v", err)
	}
	if rec.Events, err = event.DecodeEvents(body); err != nil {
		return nil, err
	}
	return rec, nil
}

// ReadRecording decodes the recording file at path.
func ReadRecording(path string) (*Recording, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	return DecodeRecording(bytes.NewReader(dat))
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
