// Package backend wires the resizer and its collaborators from Params.
package backend

import (
	"vincit.fi/image-resizer/api"
	"vincit.fi/image-resizer/backend/codec"
	"vincit.fi/image-resizer/backend/journal"
	"vincit.fi/image-resizer/backend/probe"
	"vincit.fi/image-resizer/backend/resample"
	"vincit.fi/image-resizer/backend/resizer"
	"vincit.fi/image-resizer/common/event"
	"vincit.fi/image-resizer/common/logger"
	"vincit.fi/image-resizer/common/util"
)

type Stores struct {
	// JournalStore is nil when no journal file is configured
	JournalStore *journal.Store
}

func (s *Stores) Close() {
	if s.JournalStore != nil {
		s.JournalStore.Close()
	}
}

func (s *Stores) journal() api.Journal {
	if s.JournalStore == nil {
		return nil
	}
	return s.JournalStore
}

type Brokers struct {
	Broker        *event.Broker
	DevNullBroker *event.Broker
}

func (s *Brokers) Close() {
	for _, topic := range []api.Topic{api.ResizeCompleted, api.ResizeSkipped, api.ResizeFailed, api.ShowError} {
		s.Broker.Close(topic)
	}
}

type Services struct {
	Sender    api.Sender
	Prober    api.Prober
	Codecs    *codec.Registry
	Resampler api.Resampler
	Resizer   *resizer.Resizer
}

// Backend holds everything InitializeBackend created.
type Backend struct {
	Params   *util.Params
	Stores   *Stores
	Brokers  *Brokers
	Services *Services
}

func (s *Backend) Close() {
	defer s.Stores.Close()
	defer s.Brokers.Close()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker:        event.InitBus(eventBusQueueSize),
		DevNullBroker: event.InitDevNullBus(),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeStores(params *util.Params) (*Stores, error) {
	stores := &Stores{}
	if params.JournalPath() == "" {
		logger.Debug.Printf("Journal disabled")
		return stores, nil
	}

	database, err := journal.NewDatabase(params.JournalPath())
	if err != nil {
		logger.Error.Print("Error opening journal database ", err)
		return nil, err
	}
	stores.JournalStore = journal.NewStore(database)
	return stores, nil
}

func InitializeServices(params *util.Params, stores *Stores, brokers *Brokers) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	resampler, err := resample.FromName(params.Resampler(), params.Filter())
	if err != nil {
		return nil, err
	}

	codecs := codec.NewDefaultRegistry(codec.Options{
		JpegQuality:    params.JpegQuality(),
		PngCompression: codec.PngCompressionFromName(params.PngCompression()),
		GifColors:      params.GifColors(),
	})
	prober := probe.NewProber()

	var sender api.Sender = brokers.Broker
	if !params.Events() {
		logger.Debug.Printf("Events disabled")
		sender = brokers.DevNullBroker
	}

	services := &Services{
		Sender:    sender,
		Prober:    prober,
		Codecs:    codecs,
		Resampler: resampler,
		Resizer: resizer.NewResizer(prober, codecs, resampler, sender, stores.journal(), resizer.Options{
			PreserveExif: params.PreserveExif(),
		}),
	}
	logger.Debug.Printf("Services initialized")
	return services, nil
}

// InitializeBackend parses args, initializes logging and creates the
// stores, brokers and services in that order.
func InitializeBackend(args []string) (*Backend, error) {
	params, err := util.ParseParams(args)
	if err != nil {
		return nil, err
	}
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	brokers := InitializeEventBrokers(params.EventQueueSize())
	stores, err := InitializeStores(params)
	if err != nil {
		return nil, err
	}
	services, err := InitializeServices(params, stores, brokers)
	if err != nil {
		stores.Close()
		return nil, err
	}

	return &Backend{
		Params:   params,
		Stores:   stores,
		Brokers:  brokers,
		Services: services,
	}, nil
}
