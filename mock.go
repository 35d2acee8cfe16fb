package aht20

import (
	"context"
)

// TemperatureBehaviorFunc defines the function signature for temperature behavior.
// It returns the temperature in Celsius or an error.
type TemperatureBehaviorFunc func(ctx context.Context) (float32, error)

// HumidityBehaviorFunc defines the function signature for humidity behavior.
// It returns the relative humidity in %RH or an error.
type HumidityBehaviorFunc func(ctx context.Context) (float32, error)

// MockSensor is a hardware-free stand-in for the AHT20 driver that produces
// readings from behavior functions. Application code that accepts the driver's
// Get* surface can use it in tests and simulations.
type MockSensor struct {
	tempBehavior TemperatureBehaviorFunc
	humBehavior  HumidityBehaviorFunc
}

// NewMockSensor creates a new mock sensor with the given behavior functions.
// The temperature behavior is called by GetTemperature() and GetTempAndHum().
// The humidity behavior is called by GetHumidity() and GetTempAndHum().
//
// Example usage:
//
//	// Simple static values
//	sensor := aht20.NewMockSensor(
//		func(ctx context.Context) (float32, error) { return 22.5, nil },
//		func(ctx context.Context) (float32, error) { return 45.0, nil },
//	)
func NewMockSensor(tempBehavior TemperatureBehaviorFunc, humBehavior HumidityBehaviorFunc) *MockSensor {
	return &MockSensor{
		tempBehavior: tempBehavior,
		humBehavior:  humBehavior,
	}
}

// GetTemperature returns the temperature by calling the temperature behavior function.
func (m *MockSensor) GetTemperature(ctx context.Context) (float32, error) {
	return m.tempBehavior(ctx)
}

// GetHumidity returns the humidity by calling the humidity behavior function.
func (m *MockSensor) GetHumidity(ctx context.Context) (float32, error) {
	return m.humBehavior(ctx)
}

// GetTempAndHum returns both temperature and humidity by calling both behavior functions.
func (m *MockSensor) GetTempAndHum(ctx context.Context) (float32, float32, error) {
	temp, err := m.tempBehavior(ctx)
	if err != nil {
		return 0, 0, err
	}
	hum, err := m.humBehavior(ctx)
	if err != nil {
		return 0, 0, err
	}
	return temp, hum, nil
}
