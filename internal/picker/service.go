package picker

import (
	"math/rand/v2"

	"github.com/ytget/randomizer/internal/logger"
	"github.com/ytget/randomizer/internal/model"
)

const component = "Picker"

// Service holds the option list for the lifetime of the process
type Service struct {
	options  *model.OptionList
	source   Source
	log      logger.Logger
	onUpdate func() // callback for UI updates
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithSource replaces the default random source
func WithSource(source Source) ServiceOption {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithLogger attaches a logger to the service
func WithLogger(log logger.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a service with an empty option list
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		options: model.NewOptionList(),
		source:  newDefaultSource(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newDefaultSource returns a PCG generator seeded from the runtime's random seed
func newDefaultSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SetUpdateCallback sets the callback invoked after every mutation
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Add appends text as the last option. Empty text is accepted as is.
func (s *Service) Add(text string) model.Option {
	option := model.NewOption(text)
	s.options.Append(option)

	s.log.Debug(component, "option added", map[string]interface{}{
		"id":    option.ID,
		"count": s.options.Len(),
	})
	s.notifyUpdate()
	return option
}

// Remove deletes the option at index. A negative index means nothing is
// selected; an index past the end is a stale selection. Both are no-ops.
func (s *Service) Remove(index int) bool {
	if index < 0 {
		return false
	}

	if !s.options.RemoveAt(index) {
		s.log.Warning(component, "ignoring stale selection", map[string]interface{}{
			"index": index,
			"count": s.options.Len(),
		})
		return false
	}

	s.log.Debug(component, "option removed", map[string]interface{}{
		"index": index,
		"count": s.options.Len(),
	})
	s.notifyUpdate()
	return true
}

// PickRandom returns the text of a uniformly chosen option
func (s *Service) PickRandom() (string, error) {
	count := s.options.Len()
	if count == 0 {
		return "", model.ErrEmptyList
	}

	index := s.source.IntN(count)
	option, ok := s.options.At(index)
	if !ok {
		// A misbehaving source must not pick outside the list.
		index = 0
		option, _ = s.options.At(index)
	}

	s.log.Debug(component, "option picked", map[string]interface{}{
		"index": index,
		"count": count,
	})
	return option.Text, nil
}

// Len returns the number of options
func (s *Service) Len() int {
	return s.options.Len()
}

// At returns the option at index
func (s *Service) At(index int) (model.Option, bool) {
	return s.options.At(index)
}

// Options returns a copy of all options in insertion order
func (s *Service) Options() []model.Option {
	return s.options.Options()
}

func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
