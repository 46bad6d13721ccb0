package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sherine-k/onboarding/pkg/clock"
	"github.com/sherine-k/onboarding/pkg/console"
	"github.com/sherine-k/onboarding/pkg/entity"
	"github.com/sherine-k/onboarding/pkg/generator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/sherine-k/onboarding/pkg/simulation"

// CustomerOptions configures the background customer load
type CustomerOptions struct {
	Enabled      bool
	Interarrival Uniform
	Service      Uniform
}

// Options configures a Simulation
type Options struct {
	// FrameDelay is the real time spent per simulated instant by Run.
	FrameDelay time.Duration
	// Sink receives the narration. Defaults to an in-memory buffer.
	Sink console.Sink
	// OriginalGangsters is the seed population newcomers befriend.
	OriginalGangsters *entity.Population
	MessageDelay      Uniform
	Customers         CustomerOptions
	Arrivals          []Arrival
	FriendCount       int
	Generator         *generator.Generator
	// Duration ends the run; zero runs until no activity is pending.
	Duration       time.Duration
	Epoch          time.Time
	Rand           *rand.Rand
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// DefaultOptions returns options with the standard delays and background load.
func DefaultOptions() Options {
	return Options{
		MessageDelay: Uniform{Min: 5 * time.Second, Max: 10 * time.Second},
		Customers: CustomerOptions{
			Enabled:      true,
			Interarrival: Around(18*time.Second, 6*time.Second),
			Service:      Around(15*time.Second, 3*time.Second),
		},
		FriendCount: generator.DefaultFriendCount,
	}
}

// Simulation runs the onboarding chain on a virtual clock.
// It is not safe for concurrent use.
type Simulation struct {
	id         uuid.UUID
	opts       Options
	clock      *clock.Clock
	sink       console.Sink
	population *entity.Population
	seedNames  []string
	generator  *generator.Generator
	bus        Bus
	dispatcher *Dispatcher
	arrivals   []*arrivalSource
	rng        *rand.Rand
	logger     *slog.Logger
	tracer     trace.Tracer
	records    []Record
	customers  int
}

// New creates an idle simulation
func New(opts Options) (*Simulation, error) {
	if err := opts.MessageDelay.Validate(); err != nil {
		return nil, fmt.Errorf("invalid message delay: %w", err)
	}
	if opts.Customers.Enabled {
		if err := opts.Customers.Interarrival.Validate(); err != nil {
			return nil, fmt.Errorf("invalid customer interarrival: %w", err)
		}
		// a source that never waits would hold the clock at one instant
		if opts.Customers.Interarrival.Max <= 0 {
			return nil, fmt.Errorf("invalid customer interarrival: %s allows no positive delay", opts.Customers.Interarrival)
		}
		if err := opts.Customers.Service.Validate(); err != nil {
			return nil, fmt.Errorf("invalid customer service: %w", err)
		}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sink := opts.Sink
	if sink == nil {
		sink = console.NewBuffer()
	}
	gen := opts.Generator
	if gen == nil {
		gen = generator.New(rng)
	}
	if opts.FriendCount <= 0 {
		opts.FriendCount = generator.DefaultFriendCount
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	// newcomers join the same population the seed lives in
	population, err := entity.NewPopulation(opts.OriginalGangsters.Members()...)
	if err != nil {
		return nil, fmt.Errorf("invalid population: %w", err)
	}

	id := uuid.New()
	s := &Simulation{
		id:         id,
		opts:       opts,
		sink:       sink,
		population: population,
		seedNames:  population.Names(),
		generator:  gen,
		rng:        rng,
		logger:     logger.With("run", id.String()),
		tracer:     tp.Tracer(tracerName),
	}
	s.clock = clock.New(clock.Config{
		FrameDelay: opts.FrameDelay,
		End:        opts.Duration,
		Epoch:      opts.Epoch,
		Logger:     s.logger,
	})
	s.clock.OnStateChange(s.onStateChanged)
	s.dispatcher = &Dispatcher{
		actor:     actor{sink: sink, rng: rng, emit: s.onCustomEvent},
		scheduler: s.clock,
		delay:     opts.MessageDelay,
		logger:    s.logger,
		tracer:    s.tracer,
	}

	for _, arrival := range opts.Arrivals {
		schedule, err := ParseSchedule(arrival.CronSchedule)
		if err != nil {
			return nil, fmt.Errorf("arrival %s: %w", arrival.Name, err)
		}
		s.arrivals = append(s.arrivals, &arrivalSource{arrival: arrival, schedule: schedule, sim: s})
	}

	return s, nil
}

// ID returns the unique run identifier
func (s *Simulation) ID() uuid.UUID { return s.id }

// Sink returns the narration sink
func (s *Simulation) Sink() console.Sink { return s.sink }

// Population returns the seed population plus every newcomer
func (s *Simulation) Population() *entity.Population { return s.population }

// Now returns the elapsed simulated time
func (s *Simulation) Now() time.Duration { return s.clock.Now() }

// Time returns the simulated wall time
func (s *Simulation) Time() time.Time { return s.clock.Time() }

// State returns the run state
func (s *Simulation) State() clock.State { return s.clock.State() }

// Failures returns the errors raised by activities
func (s *Simulation) Failures() []error { return s.clock.Failures() }

// Customers returns how many background customers were generated
func (s *Simulation) Customers() int { return s.customers }

// Records returns the run history in order
func (s *Simulation) Records() []Record {
	return append([]Record(nil), s.records...)
}

// Subscribe registers an observer for custom events
func (s *Simulation) Subscribe(o Observer) func() {
	return s.bus.Subscribe(o)
}

// OnTimeAdvance registers a listener for simulated time changes
func (s *Simulation) OnTimeAdvance(fn func(time.Duration)) {
	s.clock.OnTimeAdvance(fn)
}

// Start begins the run, or resumes a paused one. Background sources are
// armed on every start since pausing abandons them.
func (s *Simulation) Start() error {
	switch s.clock.State() {
	case clock.Running:
		return nil
	case clock.Idle:
		s.sink.Log(fmt.Sprintf("ℹ️ [INFO] Starting simulation! There are %d OGs!", len(s.seedNames)))
	}
	if err := s.clock.Start(); err != nil {
		return fmt.Errorf("failed to start simulation: %w", err)
	}

	if s.opts.Customers.Enabled {
		s.clock.Schedule(&customerSource{
			rng:          s.rng,
			schedule:     s.clock.Schedule,
			interarrival: s.opts.Customers.Interarrival,
			service:      s.opts.Customers.Service,
			count:        &s.customers,
		})
	}
	for _, a := range s.arrivals {
		s.clock.Schedule(a)
	}
	return nil
}

// Stop pauses the run; pending activities are abandoned.
func (s *Simulation) Stop() {
	s.clock.Pause()
}

// Run drives the clock until the run finishes, is stopped or ctx is cancelled.
func (s *Simulation) Run(ctx context.Context) error {
	return s.clock.Run(ctx)
}

// Advance moves simulated time forward, resuming every activity due.
func (s *Simulation) Advance(d time.Duration) {
	s.clock.Advance(d)
}

// Trigger hands a trigger to the dispatcher. Triggers raised on a paused or
// finished run are dropped.
func (s *Simulation) Trigger(t Trigger) {
	if state := s.clock.State(); state == clock.Paused || state == clock.Finished {
		s.logger.Debug("trigger dropped", "state", state)
		return
	}
	if t != nil {
		s.record(triggerRecord(t, s.clock.Now()))
	}
	s.dispatcher.Dispatch(t)
}

func (s *Simulation) onCustomEvent(event Event) {
	_, span := s.tracer.Start(context.Background(), "event "+string(event.Kind()),
		trace.WithAttributes(attribute.String("onboarding.event", string(event.Kind()))))
	defer span.End()

	from, to := event.Participants()
	s.record(Record{
		Time:    s.clock.Now(),
		Type:    RecordEvent,
		Kind:    string(event.Kind()),
		From:    nameOf(from),
		To:      nameOf(to),
		Message: fmt.Sprintf("%s -> %s", nameOf(from), nameOf(to)),
	})
	s.bus.Publish(s, event)
}

// arrive generates a uniquely named newcomer befriending seed entities and
// raises its init trigger.
func (s *Simulation) arrive(source string) error {
	name, err := s.generator.UniqueName(s.population.Taken())
	if err != nil {
		return fmt.Errorf("arrival %s: %w", source, err)
	}
	newcomer := s.generator.BuildEntity(name, s.seedNames, s.opts.FriendCount)
	if err := s.population.Add(newcomer); err != nil {
		return fmt.Errorf("arrival %s: %w", source, err)
	}
	if len(newcomer.Friends) == 0 {
		return fmt.Errorf("arrival %s: %w: %s knows nobody", source, ErrPreconditionViolation, name)
	}
	s.logger.Debug("newcomer arrived", "name", name, "source", source)
	s.Trigger(EntityInit{Entity: newcomer})
	return nil
}

func (s *Simulation) onStateChanged(state clock.State) {
	switch state {
	case clock.Running:
		s.sink.Log("ℹ️ [INFO] Simulation is running!")
	case clock.Paused:
		s.sink.Log("ℹ️ [INFO] Simulation is paused!")
	case clock.Finished:
		s.sink.Log("ℹ️ [INFO] Simulation is finished!")
	}
}

func (s *Simulation) record(r Record) {
	s.records = append(s.records, r)
}

func triggerRecord(t Trigger, now time.Duration) Record {
	r := Record{Time: now, Type: RecordTrigger, Kind: string(t.Kind())}
	switch t := t.(type) {
	case EntityInit:
		r.To = nameOf(t.Entity)
		r.Message = fmt.Sprintf("%s joined", r.To)
	case EntityIntroduce:
		r.From, r.To = nameOf(t.Initiator), nameOf(t.Entity)
		r.Message = fmt.Sprintf("%s introduces themselves to %s", r.To, r.From)
	case FriendsGreet:
		r.From, r.To = nameOf(t.Initiator), nameOf(t.Entity)
		r.Message = fmt.Sprintf("friends of %s greet them", r.To)
	default:
		r.Message = "unrecognized trigger"
	}
	return r
}
