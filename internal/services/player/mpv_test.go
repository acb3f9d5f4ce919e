package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected mpvMessage
		wantErr  bool
	}{
		{
			name:     "Reply",
			line:     `{"data":null,"request_id":7,"error":"success"}`,
			expected: mpvMessage{RequestID: 7, Status: "success"},
		},
		{
			name:     "End file with error",
			line:     `{"event":"end-file","reason":"error","playlist_entry_id":1,"file_error":"loading failed"}`,
			expected: mpvMessage{Event: "end-file", Reason: "error", FileError: "loading failed", EntryID: 1},
		},
		{
			name:     "Loadfile reply",
			line:     `{"request_id":3,"error":"success","data":{"playlist_entry_id":4}}`,
			expected: mpvMessage{RequestID: 3, Status: "success", EntryID: 4},
		},
		{
			name:     "Plain event",
			line:     `{"event":"playback-restart"}`,
			expected: mpvMessage{Event: "playback-restart"},
		},
		{
			name:    "Garbage",
			line:    `not json`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := parseMessage([]byte(tc.line))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, msg)
		})
	}
}

func TestTranslateEvent(t *testing.T) {
	testCases := []struct {
		msg      mpvMessage
		kind     ports.EngineEventKind
		code     domain.ErrorCode
		relevant bool
	}{
		{mpvMessage{Event: "playback-restart"}, ports.EngineReady, "", true},
		{mpvMessage{Event: "end-file", Reason: "error", FileError: "loading failed"}, ports.EngineError, domain.ErrorNetwork, true},
		{mpvMessage{Event: "end-file", Reason: "error", FileError: "unrecognized file format"}, ports.EngineError, domain.ErrorSourceUnsupported, true},
		{mpvMessage{Event: "end-file", Reason: "error", FileError: "no audio or video data played"}, ports.EngineError, domain.ErrorDecode, true},
		{mpvMessage{Event: "end-file", Reason: "error", FileError: "something odd"}, ports.EngineError, domain.ErrorUnknown, true},
		{mpvMessage{Event: "end-file", Reason: "quit"}, ports.EngineError, domain.ErrorAborted, true},
		{mpvMessage{Event: "end-file", Reason: "eof"}, ports.EngineError, domain.ErrorNetwork, true},
		{mpvMessage{Event: "end-file", Reason: "stop"}, 0, "", false},
		{mpvMessage{Event: "start-file"}, 0, "", false},
		{mpvMessage{Event: "file-loaded"}, 0, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.msg.Event+"/"+tc.msg.Reason+"/"+tc.msg.FileError, func(t *testing.T) {
			kind, code, ok := translateEvent(tc.msg)
			require.Equal(t, tc.relevant, ok)
			require.Equal(t, tc.kind, kind)
			require.Equal(t, tc.code, code)
		})
	}
}

// fakeMpv accepts one IPC connection and records the commands it receives.
type fakeMpv struct {
	listener net.Listener
	conn     chan net.Conn
	commands chan MpvCommand
}

func newFakeMpv(t *testing.T) (*fakeMpv, string) {
	dir, err := os.MkdirTemp("", "mpv")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	socketPath := filepath.Join(dir, "s.sock")

	l, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	f := &fakeMpv{listener: l, conn: make(chan net.Conn, 1), commands: make(chan MpvCommand, 16)}
	go func() {
		c, err := l.Accept()
		if err != nil {
			return
		}
		f.conn <- c
		scanner := bufio.NewScanner(c)
		for scanner.Scan() {
			var cmd MpvCommand
			if json.Unmarshal(scanner.Bytes(), &cmd) == nil {
				f.commands <- cmd
			}
		}
	}()
	return f, socketPath
}

func (f *fakeMpv) next(t *testing.T) MpvCommand {
	select {
	case cmd := <-f.commands:
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an mpv command")
		return MpvCommand{}
	}
}

func (f *fakeMpv) send(t *testing.T, c net.Conn, lines ...string) {
	for _, line := range lines {
		_, err := fmt.Fprintln(c, line)
		require.NoError(t, err)
	}
}

func nextEvent(t *testing.T, p *MpvPlayer) ports.EngineEvent {
	select {
	case ev := <-p.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an engine event")
		return ports.EngineEvent{}
	}
}

func newTestPlayer(t *testing.T, socketPath string) *MpvPlayer {
	p := newMpvPlayer(socketPath)
	p.launch = func() error { return nil }
	p.start()
	t.Cleanup(func() { p.Close() })
	return p
}

func TestMpvPlayer_LoadAndEvents(t *testing.T) {
	fake, socketPath := newFakeMpv(t)
	p := newTestPlayer(t, socketPath)

	require.NoError(t, p.Load(1, "http://capital"))

	loadCmd := fake.next(t)
	assert.Equal(t, []any{"loadfile", "http://capital", "replace"}, loadCmd.Command)
	unpause := fake.next(t)
	assert.Equal(t, []any{"set_property", "pause", false}, unpause.Command)

	conn := <-fake.conn
	fake.send(t, conn,
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":1}}`, loadCmd.RequestID),
		`{"event":"start-file","playlist_entry_id":1}`,
		`{"event":"playback-restart"}`,
	)

	ev := nextEvent(t, p)
	require.Equal(t, ports.EngineEvent{Seq: 1, Kind: ports.EngineReady}, ev)

	require.NoError(t, p.Load(2, "http://lbc"))
	loadCmd = fake.next(t)
	fake.next(t)
	fake.send(t, conn,
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":2}}`, loadCmd.RequestID),
		`{"event":"end-file","reason":"stop","playlist_entry_id":1}`,
		`{"event":"start-file","playlist_entry_id":2}`,
		`{"event":"end-file","reason":"error","file_error":"loading failed","playlist_entry_id":2}`,
	)

	ev = nextEvent(t, p)
	require.Equal(t, uint64(2), ev.Seq)
	require.Equal(t, ports.EngineError, ev.Kind)
	require.Equal(t, domain.ErrorNetwork, ev.Code)
}

func TestMpvPlayer_ReplacedLoadNeverStarts(t *testing.T) {
	fake, socketPath := newFakeMpv(t)
	p := newTestPlayer(t, socketPath)

	require.NoError(t, p.Load(1, "http://capital"))
	require.NoError(t, p.Load(2, "http://lbc"))
	first := fake.next(t)
	fake.next(t)
	second := fake.next(t)
	fake.next(t)

	// mpv replaced entry 1 before its play loop ran, so only entry 2 starts.
	conn := <-fake.conn
	fake.send(t, conn,
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":1}}`, first.RequestID),
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":2}}`, second.RequestID),
		`{"event":"end-file","reason":"redirect","playlist_entry_id":1}`,
		`{"event":"start-file","playlist_entry_id":2}`,
		`{"event":"playback-restart"}`,
	)

	require.Equal(t, ports.EngineEvent{Seq: 2, Kind: ports.EngineReady}, nextEvent(t, p))
}

func TestMpvPlayer_StaleEntryErrorKeepsItsSeq(t *testing.T) {
	fake, socketPath := newFakeMpv(t)
	p := newTestPlayer(t, socketPath)

	require.NoError(t, p.Load(1, "http://capital"))
	require.NoError(t, p.Load(2, "http://lbc"))
	first := fake.next(t)
	fake.next(t)
	second := fake.next(t)
	fake.next(t)

	conn := <-fake.conn
	fake.send(t, conn,
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":1}}`, first.RequestID),
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":2}}`, second.RequestID),
		`{"event":"start-file","playlist_entry_id":1}`,
		`{"event":"end-file","reason":"error","file_error":"loading failed","playlist_entry_id":1}`,
		`{"event":"start-file","playlist_entry_id":2}`,
		`{"event":"playback-restart"}`,
	)

	ev := nextEvent(t, p)
	require.Equal(t, uint64(1), ev.Seq)
	require.Equal(t, ports.EngineError, ev.Kind)
	require.Equal(t, ports.EngineEvent{Seq: 2, Kind: ports.EngineReady}, nextEvent(t, p))
}

func TestMpvPlayer_ConnectionLost(t *testing.T) {
	fake, socketPath := newFakeMpv(t)
	p := newTestPlayer(t, socketPath)

	require.NoError(t, p.Load(1, "http://capital"))
	loadCmd := fake.next(t)
	fake.next(t)

	conn := <-fake.conn
	fake.send(t, conn,
		fmt.Sprintf(`{"request_id":%d,"error":"success","data":{"playlist_entry_id":1}}`, loadCmd.RequestID),
		`{"event":"start-file","playlist_entry_id":1}`,
		`{"event":"playback-restart"}`,
	)
	require.Equal(t, ports.EngineEvent{Seq: 1, Kind: ports.EngineReady}, nextEvent(t, p))

	require.NoError(t, conn.Close())

	ev := nextEvent(t, p)
	require.Equal(t, uint64(1), ev.Seq)
	require.Equal(t, ports.EngineError, ev.Kind)
	require.Equal(t, domain.ErrorUnknown, ev.Code)
}

func TestMpvPlayer_PauseAndVolume(t *testing.T) {
	fake, socketPath := newFakeMpv(t)
	p := newTestPlayer(t, socketPath)

	require.NoError(t, p.SetVolume(42))
	require.NoError(t, p.Pause())

	vol := fake.next(t)
	require.Equal(t, []any{"set_property", "volume", float64(42)}, vol.Command)
	pause := fake.next(t)
	require.Equal(t, []any{"set_property", "pause", true}, pause.Command)
}

func TestMpvPlayer_LoadRejectedByMpv(t *testing.T) {
	fake, socketPath := newFakeMpv(t)
	p := newTestPlayer(t, socketPath)

	require.NoError(t, p.Load(5, "http://broken"))
	loadCmd := fake.next(t)
	conn := <-fake.conn
	fake.send(t, conn, fmt.Sprintf(`{"request_id":%d,"error":"invalid parameter"}`, loadCmd.RequestID))

	ev := nextEvent(t, p)
	require.Equal(t, uint64(5), ev.Seq)
	require.Equal(t, ports.EngineCommandFailed, ev.Kind)
	require.EqualError(t, ev.Err, "mpv: invalid parameter")
}

func TestMpvPlayer_LaunchFailure(t *testing.T) {
	p := newMpvPlayer(filepath.Join(t.TempDir(), "missing.sock"))
	p.launch = func() error { return errors.New("mpv not installed") }
	p.start()
	t.Cleanup(func() { p.Close() })

	require.NoError(t, p.Load(3, "http://capital"))
	ev := nextEvent(t, p)
	require.Equal(t, uint64(3), ev.Seq)
	require.Equal(t, ports.EngineCommandFailed, ev.Kind)
	require.EqualError(t, ev.Err, "mpv not installed")
}

func TestMpvPlayer_Closed(t *testing.T) {
	p := newMpvPlayer(filepath.Join(t.TempDir(), "closed.sock"))
	p.launch = func() error { return nil }
	p.start()

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	require.ErrorIs(t, p.Load(1, "http://capital"), ErrEngineClosed)

	_, open := <-p.Events()
	require.False(t, open)
}
