package aht20

import (
	"context"
	"fmt"
	"testing"
)

func TestMockSensor_StaticValues(t *testing.T) {
	sensor := NewMockSensor(
		func(ctx context.Context) (float32, error) { return 22.5, nil },
		func(ctx context.Context) (float32, error) { return 45.0, nil },
	)

	ctx := context.Background()

	temp, err := sensor.GetTemperature(ctx)
	if err != nil {
		t.Fatalf("GetTemperature: unexpected error: %v", err)
	}
	if temp != 22.5 {
		t.Errorf("expected temperature 22.5, got %f", temp)
	}

	hum, err := sensor.GetHumidity(ctx)
	if err != nil {
		t.Fatalf("GetHumidity: unexpected error: %v", err)
	}
	if hum != 45.0 {
		t.Errorf("expected humidity 45.0, got %f", hum)
	}

	temp2, hum2, err := sensor.GetTempAndHum(ctx)
	if err != nil {
		t.Fatalf("GetTempAndHum: unexpected error: %v", err)
	}
	if temp2 != 22.5 || hum2 != 45.0 {
		t.Errorf("expected 22.5/45.0, got %f/%f", temp2, hum2)
	}
}

func TestMockSensor_DynamicBehavior(t *testing.T) {
	currentTemp := float32(20.0)
	currentHum := float32(50.0)

	sensor := NewMockSensor(
		func(ctx context.Context) (float32, error) { return currentTemp, nil },
		func(ctx context.Context) (float32, error) { return currentHum, nil },
	)

	ctx := context.Background()

	temp, hum, err := sensor.GetTempAndHum(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if temp != 20.0 || hum != 50.0 {
		t.Errorf("expected 20.0/50.0, got %f/%f", temp, hum)
	}

	currentTemp = 25.0
	currentHum = 60.0

	temp, hum, err = sensor.GetTempAndHum(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if temp != 25.0 || hum != 60.0 {
		t.Errorf("expected 25.0/60.0, got %f/%f", temp, hum)
	}
}

func TestMockSensor_ErrorHandling(t *testing.T) {
	sensor := NewMockSensor(
		func(ctx context.Context) (float32, error) {
			return 0, fmt.Errorf("temperature sensor error")
		},
		func(ctx context.Context) (float32, error) {
			return 0, fmt.Errorf("humidity sensor error")
		},
	)

	ctx := context.Background()

	_, err := sensor.GetTemperature(ctx)
	if err == nil || err.Error() != "temperature sensor error" {
		t.Errorf("GetTemperature: expected specific error, got %v", err)
	}

	_, err = sensor.GetHumidity(ctx)
	if err == nil || err.Error() != "humidity sensor error" {
		t.Errorf("GetHumidity: expected specific error, got %v", err)
	}

	_, _, err = sensor.GetTempAndHum(ctx)
	if err == nil || err.Error() != "temperature sensor error" {
		t.Errorf("GetTempAndHum: expected temperature sensor error, got %v", err)
	}
}

func TestMockSensor_IndependentBehaviors(t *testing.T) {
	tempCalls := 0
	humCalls := 0

	sensor := NewMockSensor(
		func(ctx context.Context) (float32, error) {
			tempCalls++
			return 20.0, nil
		},
		func(ctx context.Context) (float32, error) {
			humCalls++
			return 50.0, nil
		},
	)

	ctx := context.Background()

	_, _ = sensor.GetTemperature(ctx)
	if tempCalls != 1 || humCalls != 0 {
		t.Errorf("GetTemperature: unexpected call counts: temp=%d, hum=%d", tempCalls, humCalls)
	}

	_, _ = sensor.GetHumidity(ctx)
	if tempCalls != 1 || humCalls != 1 {
		t.Errorf("GetHumidity: unexpected call counts: temp=%d, hum=%d", tempCalls, humCalls)
	}

	_, _, _ = sensor.GetTempAndHum(ctx)
	if tempCalls != 2 || humCalls != 2 {
		t.Errorf("GetTempAndHum: unexpected call counts: temp=%d, hum=%d (expected 2, 2)", tempCalls, humCalls)
	}
}
