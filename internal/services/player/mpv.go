package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/ports"
)

const (
	socketCheckRetries  = 20
	socketCheckInterval = 100 * time.Millisecond
	commandQueueSize    = 32
	eventBufferSize     = 32
)

var ErrEngineClosed = errors.New("media engine is closed")

type MpvCommand struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id,omitempty"`
}

// request is a queued command. seq is set for load commands only.
type request struct {
	cmds []MpvCommand
	seq  uint64
}

type MpvPlayer struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	conn       net.Conn
	// launch makes sure an mpv instance is listening on socketPath.
	launch func() error

	mu        sync.Mutex
	nextReqID int
	// loadReqs maps loadfile request ids to load seqs until mpv replies;
	// entries maps the playlist entries those replies created.
	loadReqs map[int]uint64
	entries  map[int]uint64
	latest   uint64
	started  int
	active   uint64
	// lost is a connection whose reader has hit EOF.
	lost net.Conn

	queue      chan request
	events     chan ports.EngineEvent
	closed     chan struct{}
	writerDone chan struct{}
	closeOnce  sync.Once
	readers    sync.WaitGroup
}

func NewMpvPlayer(socketPath string) *MpvPlayer {
	os.Remove(socketPath)
	p := newMpvPlayer(socketPath)
	p.launch = p.startMpvProcess
	p.start()
	return p
}

func newMpvPlayer(socketPath string) *MpvPlayer {
	return &MpvPlayer{
		socketPath: socketPath,
		loadReqs:   make(map[int]uint64),
		entries:    make(map[int]uint64),
		queue:      make(chan request, commandQueueSize),
		events:     make(chan ports.EngineEvent, eventBufferSize),
		closed:     make(chan struct{}),
		writerDone: make(chan struct{}),
	}
}

func (p *MpvPlayer) start() {
	go p.writeLoop()
}

func (p *MpvPlayer) isProcessRunning() bool {
	if p.cmd == nil {
		return false
	}
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

func (p *MpvPlayer) startMpvProcess() error {
	if p.isProcessRunning() {
		return nil
	}

	logger.Log.Info().Msg("Starting new mpv process...")
	args := []string{
		"--idle",
		"--input-ipc-server=" + p.socketPath,
		"--no-video",
		"--no-config",
		"--no-terminal",
	}

	p.cmd = exec.Command("mpv", args...)
	p.cmd.Stdout = logger.Log
	p.cmd.Stderr = logger.Log

	if err := p.cmd.Start(); err != nil {
		p.cmd = nil
		return fmt.Errorf("could not start mpv process: %w", err)
	}
	exited := make(chan struct{})
	p.exited = exited
	go func(cmd *exec.Cmd) {
		cmd.Wait()
		close(exited)
	}(p.cmd)

	for i := 0; i < socketCheckRetries; i++ {
		if _, err := os.Stat(p.socketPath); err == nil {
			logger.Log.Info().Msg("mpv socket detected. Process ready.")
			return nil
		}
		time.Sleep(socketCheckInterval)
	}

	logger.Log.Error().Str("socket", p.socketPath).Msg("Timed out waiting for mpv socket.")
	p.cmd.Process.Kill()
	p.cmd = nil
	return fmt.Errorf("mpv process started but socket did not appear at %s", p.socketPath)
}

// connect is only called from the write loop.
func (p *MpvPlayer) connect() error {
	p.mu.Lock()
	if p.conn != nil && p.conn == p.lost {
		p.conn.Close()
		p.conn = nil
	}
	p.mu.Unlock()

	if p.conn != nil {
		return nil
	}
	if err := p.launch(); err != nil {
		return err
	}

	conn, err := net.Dial("unix", p.socketPath)
	if err != nil {
		return fmt.Errorf("could not connect to mpv socket: %w", err)
	}
	p.conn = conn

	p.readers.Add(1)
	go p.readLoop(conn)
	return nil
}

func (p *MpvPlayer) enqueue(r request) error {
	select {
	case <-p.closed:
		return ErrEngineClosed
	default:
	}
	select {
	case p.queue <- r:
		return nil
	case <-p.closed:
		return ErrEngineClosed
	}
}

func (p *MpvPlayer) Load(seq uint64, url string) error {
	return p.enqueue(request{
		seq: seq,
		cmds: []MpvCommand{
			{Command: []any{"loadfile", url, "replace"}},
			{Command: []any{"set_property", "pause", false}},
		},
	})
}

func (p *MpvPlayer) Pause() error {
	return p.enqueue(request{cmds: []MpvCommand{{Command: []any{"set_property", "pause", true}}}})
}

func (p *MpvPlayer) SetVolume(level int) error {
	return p.enqueue(request{cmds: []MpvCommand{{Command: []any{"set_property", "volume", level}}}})
}

func (p *MpvPlayer) Events() <-chan ports.EngineEvent {
	return p.events
}

func (p *MpvPlayer) writeLoop() {
	defer close(p.writerDone)
	for {
		select {
		case <-p.closed:
			return
		case r := <-p.queue:
			if err := p.write(r); err != nil {
				logger.Log.Warn().Err(err).Msg("Could not send command to mpv")
				p.dropConn()
				if r.seq != 0 {
					p.emit(ports.EngineEvent{Seq: r.seq, Kind: ports.EngineCommandFailed, Err: err})
				}
			}
		}
	}
}

func (p *MpvPlayer) write(r request) error {
	if err := p.connect(); err != nil {
		return err
	}

	p.mu.Lock()
	for i := range r.cmds {
		p.nextReqID++
		r.cmds[i].RequestID = p.nextReqID
	}
	if r.seq != 0 {
		p.loadReqs[r.cmds[0].RequestID] = r.seq
		p.latest = r.seq
	}
	p.mu.Unlock()

	encoder := json.NewEncoder(p.conn)
	for _, cmd := range r.cmds {
		if err := encoder.Encode(cmd); err != nil {
			if r.seq != 0 {
				p.forgetLoad(r.cmds[0].RequestID)
			}
			return fmt.Errorf("error sending mpv command: %w", err)
		}
	}
	return nil
}

func (p *MpvPlayer) dropConn() {
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}

func (p *MpvPlayer) readLoop(conn net.Conn) {
	defer p.readers.Done()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		msg, err := parseMessage(scanner.Bytes())
		if err != nil {
			logger.Log.Warn().Str("line", scanner.Text()).Err(err).Msg("Could not parse line from mpv")
			continue
		}
		p.handle(msg)
	}

	select {
	case <-p.closed:
		return
	default:
	}

	// mpv exited or dropped the socket; whatever was loading or playing is gone.
	p.mu.Lock()
	p.lost = conn
	seq := p.active
	if seq == 0 && len(p.loadReqs) > 0 {
		seq = p.latest
	}
	p.active, p.started = 0, 0
	p.loadReqs = make(map[int]uint64)
	p.entries = make(map[int]uint64)
	p.mu.Unlock()

	logger.Log.Error().Err(scanner.Err()).Uint64("seq", seq).Msg("Lost connection to mpv")
	if seq != 0 {
		p.emit(ports.EngineEvent{Seq: seq, Kind: ports.EngineError, Code: domain.ErrorUnknown})
	}
}

func (p *MpvPlayer) handle(msg mpvMessage) {
	if msg.Event == "" {
		p.handleReply(msg)
		return
	}

	seq := p.eventSeq(msg)

	kind, code, ok := translateEvent(msg)
	if !ok || seq == 0 {
		return
	}
	p.emit(ports.EngineEvent{Seq: seq, Kind: kind, Code: code})
}

// eventSeq returns the load an event belongs to, or 0 when it is unknown.
// Events carrying a playlist entry id are matched by that id; the others
// belong to the entry that started last.
func (p *MpvPlayer) eventSeq(msg mpvMessage) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg.Event == "start-file" {
		p.started = msg.EntryID
		if msg.EntryID == 0 {
			p.active = p.latest
		} else {
			p.active = p.entries[msg.EntryID]
		}
		return p.active
	}

	if msg.EntryID == 0 {
		return p.active
	}
	seq := p.entries[msg.EntryID]
	if msg.Event == "end-file" {
		delete(p.entries, msg.EntryID)
	}
	return seq
}

func (p *MpvPlayer) handleReply(msg mpvMessage) {
	p.mu.Lock()
	seq, isLoad := p.loadReqs[msg.RequestID]
	p.mu.Unlock()
	if !isLoad {
		if msg.Status != "" && msg.Status != "success" {
			logger.Log.Warn().Int("request_id", msg.RequestID).Str("error", msg.Status).Msg("mpv command failed")
		}
		return
	}

	if msg.Status == "success" {
		p.mu.Lock()
		delete(p.loadReqs, msg.RequestID)
		if msg.EntryID != 0 {
			p.entries[msg.EntryID] = seq
			// start-file overtook the reply.
			if p.started == msg.EntryID && p.active == 0 {
				p.active = seq
			}
		}
		p.mu.Unlock()
		return
	}
	p.forgetLoad(msg.RequestID)
	p.emit(ports.EngineEvent{Seq: seq, Kind: ports.EngineCommandFailed, Err: fmt.Errorf("mpv: %s", msg.Status)})
}

// forgetLoad removes a load that mpv will never start.
func (p *MpvPlayer) forgetLoad(reqID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.loadReqs, reqID)
}

func (p *MpvPlayer) emit(ev ports.EngineEvent) {
	select {
	case p.events <- ev:
	case <-p.closed:
	}
}

// Close stops the command queue, the IPC connection and the mpv process.
// The Events channel is closed once every reader has returned.
func (p *MpvPlayer) Close() error {
	p.closeOnce.Do(func() {
		close(p.closed)
		<-p.writerDone
		p.dropConn()
		p.readers.Wait()
		close(p.events)

		if p.isProcessRunning() {
			if err := p.cmd.Process.Kill(); err != nil {
				logger.Log.Error().Err(err).Msg("Error terminating mpv process")
			}
		}
		os.Remove(p.socketPath)
	})
	return nil
}
