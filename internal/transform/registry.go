package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("delay_purchase", createDelayPurchase)
	registry.Register("set_down_payment", createSetDownPayment)
	registry.Register("scale_events", createScaleEvents)
	registry.Register("disable_event", createDisableEvent)
	registry.Register("set_initial_cash", createSetInitialCash)
	registry.Register("extend_horizon", createExtendHorizon)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "delay_purchase:home=starter,months=12"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	name, paramsStr, found := strings.Cut(spec, ":")
	if !found {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			k, v, ok := strings.Cut(paramPair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createDelayPurchase(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam(params, "delay_purchase", "months")
	if err != nil {
		return nil, err
	}
	extendRent := false
	if v, ok := params["extend_rent"]; ok {
		if extendRent, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid extend_rent value: %w", err)
		}
	}
	return &DelayPurchase{
		Home:       params["home"],
		Months:     months,
		ExtendRent: extendRent,
	}, nil
}

func createSetDownPayment(params map[string]string) (ScenarioTransform, error) {
	pct, err := decimalParam(params, "set_down_payment", "pct")
	if err != nil {
		return nil, err
	}
	return &SetDownPayment{
		Home:     params["home"],
		Fraction: pct.Div(decimal.NewFromInt(100)),
	}, nil
}

func createScaleEvents(params map[string]string) (ScenarioTransform, error) {
	match, ok := params["match"]
	if !ok {
		return nil, fmt.Errorf("scale_events requires 'match' parameter")
	}
	factor, err := decimalParam(params, "scale_events", "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleEvents{Match: match, Factor: factor}, nil
}

func createDisableEvent(params map[string]string) (ScenarioTransform, error) {
	event, ok := params["event"]
	if !ok {
		return nil, fmt.Errorf("disable_event requires 'event' parameter")
	}
	return &DisableEvent{Event: event}, nil
}

func createSetInitialCash(params map[string]string) (ScenarioTransform, error) {
	amount, err := decimalParam(params, "set_initial_cash", "amount")
	if err != nil {
		return nil, err
	}
	return &SetInitialCash{Amount: amount}, nil
}

func createExtendHorizon(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam(params, "extend_horizon", "months")
	if err != nil {
		return nil, err
	}
	return &ExtendHorizon{Months: months}, nil
}

func intParam(params map[string]string, transform, key string) (int, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func decimalParam(params map[string]string, transform, key string) (decimal.Decimal, error) {
	v, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
