package aht20

import (
	"context"
	"fmt"
	"time"
)

// AHT20 default 7-bit I2C address. The chip has no address pins; a different
// address only makes sense behind a mux.
const DefaultAddress = 0x38

// Commands (first byte on the wire, followed by fixed parameter bytes)
const (
	cmdInitialize byte = 0xBE
	cmdTrigger    byte = 0xAC
	cmdSoftReset  byte = 0xBA
)

var (
	argsInitialize = []byte{cmdInitialize, 0x08, 0x00}
	argsTrigger    = []byte{cmdTrigger, 0x33, 0x00}
)

// Status byte bit definitions:
// Bit7: BSY (1 = measurement or command in progress)
// Bit3: CAL (1 = factory calibration constants loaded)
const (
	statusBitBusy       = 0x80
	statusBitCalibrated = 0x08
)

var ErrNotInitialized = fmt.Errorf("aht20: sensor not initialized, call Init first")
var ErrBusy = fmt.Errorf("aht20: measurement in progress")
var ErrNotCalibrated = fmt.Errorf("aht20: sensor not calibrated")

// Delays from the datasheet: calibration load after 0xBE takes 50-80ms,
// a conversion after 0xAC takes >75ms, soft reset recovery <20ms.
const (
	defaultCalibrationDelay = 80 * time.Millisecond
	defaultMeasurementDelay = 80 * time.Millisecond
	resetDelay              = 20 * time.Millisecond
)

type Config struct {
	Address          byte
	CalibrationDelay time.Duration
	MeasurementDelay time.Duration
	Delay            Delayer
}

type ConfigOption func(*Config)

func WithAddress(address byte) ConfigOption {
	return func(c *Config) {
		c.Address = address
	}
}

func WithCalibrationDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.CalibrationDelay = delay
	}
}

func WithMeasurementDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.MeasurementDelay = delay
	}
}

func WithDelayer(delay Delayer) ConfigOption {
	return func(c *Config) {
		c.Delay = delay
	}
}

// Sensor represents an Aosong AHT20 temperature/humidity sensor on a shared
// I2C bus. The sensor does not own the bus; it only ever addresses its own
// device and never reconfigures bus-wide settings.
//
// Typical usage:
//
//	s := aht20.New(bus)
//	err := s.Init(ctx)
//	temp, hum, err := s.GetTempAndHum(ctx)
//
// A Sensor is not safe for concurrent use; interleaved command bytes would
// corrupt the chip's measurement cycle. Keep one logical owner per handle or
// wrap it in external mutual exclusion.
type Sensor struct {
	transport I2CBus
	addr      byte
	delay     Delayer

	calibrationDelay time.Duration
	measurementDelay time.Duration

	initialized bool
	buf         []byte

	lastTemp float32
	lastHum  float32
}

// New creates a new AHT20 connector with the given I2CBus transport. The bus
// must already be configured; New does not touch the device.
func New(trans I2CBus, opts ...ConfigOption) *Sensor {
	config := Config{
		Address:          DefaultAddress,
		CalibrationDelay: defaultCalibrationDelay,
		MeasurementDelay: defaultMeasurementDelay,
		Delay:            TimerDelayer{},
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &Sensor{
		transport:        trans,
		addr:             config.Address,
		delay:            config.Delay,
		calibrationDelay: config.CalibrationDelay,
		measurementDelay: config.MeasurementDelay,
		buf:              make([]byte, 6),
	}
}

// Init issues the calibration command and verifies the calibration bit in the
// status byte. It must succeed once before measurements are trusted. Safe to
// call repeatedly; re-initialization reissues the command to the chip.
func (s *Sensor) Init(ctx context.Context) error {
	err := s.transport.WriteToAddr(ctx, s.addr, argsInitialize)
	if err != nil {
		return fmt.Errorf("aht20: init command failed: %w", err)
	}
	err = s.delay.Delay(ctx, s.calibrationDelay)
	if err != nil {
		return err
	}
	err = s.transport.ReadFromAddr(ctx, s.addr, s.buf[:1])
	if err != nil {
		return fmt.Errorf("aht20: status read failed: %w", err)
	}
	if s.buf[0]&statusBitCalibrated == 0 {
		s.initialized = false
		return ErrNotCalibrated
	}
	s.initialized = true
	return nil
}

// GetTemperature performs a single measurement and returns temperature in Celsius.
func (s *Sensor) GetTemperature(ctx context.Context) (float32, error) {
	if err := s.measure(ctx); err != nil {
		return 0, err
	}
	return s.lastTemp, nil
}

// GetHumidity performs a single measurement and returns relative humidity in %RH.
func (s *Sensor) GetHumidity(ctx context.Context) (float32, error) {
	if err := s.measure(ctx); err != nil {
		return 0, err
	}
	return s.lastHum, nil
}

// GetTempAndHum performs a single measurement and returns temperature and
// humidity. It fails with ErrNotInitialized (without touching the bus) until
// Init has succeeded. A busy status after the conversion delay is surfaced as
// ErrBusy rather than retried; retry policy belongs to the caller.
func (s *Sensor) GetTempAndHum(ctx context.Context) (float32, float32, error) {
	if err := s.measure(ctx); err != nil {
		return 0, 0, err
	}
	return s.lastTemp, s.lastHum, nil
}

// Status reads and returns the raw status byte.
func (s *Sensor) Status(ctx context.Context) (byte, error) {
	err := s.transport.ReadFromAddr(ctx, s.addr, s.buf[:1])
	if err != nil {
		return 0, fmt.Errorf("aht20: status read failed: %w", err)
	}
	return s.buf[0], nil
}

// IsBusy reports whether a status byte has the busy bit set.
func IsBusy(status byte) bool {
	return status&statusBitBusy != 0
}

// IsCalibrated reports whether a status byte has the calibration bit set.
func IsCalibrated(status byte) bool {
	return status&statusBitCalibrated != 0
}

// SoftReset reboots the chip. Calibration state is lost; Init must be called
// again before the next measurement.
func (s *Sensor) SoftReset(ctx context.Context) error {
	err := s.transport.WriteToAddr(ctx, s.addr, []byte{cmdSoftReset})
	if err != nil {
		return fmt.Errorf("aht20: soft reset failed: %w", err)
	}
	s.initialized = false
	return s.delay.Delay(ctx, resetDelay)
}

func (s *Sensor) measure(ctx context.Context) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	err := s.transport.WriteToAddr(ctx, s.addr, argsTrigger)
	if err != nil {
		return fmt.Errorf("aht20: trigger command failed: %w", err)
	}
	err = s.delay.Delay(ctx, s.measurementDelay)
	if err != nil {
		return err
	}
	// status byte plus 5 packed data bytes in a single transaction
	err = s.transport.ReadFromAddr(ctx, s.addr, s.buf)
	if err != nil {
		return fmt.Errorf("aht20: measurement read failed: %w", err)
	}
	if s.buf[0]&statusBitBusy != 0 {
		return ErrBusy
	}
	if s.buf[0]&statusBitCalibrated == 0 {
		// calibration constants got lost, e.g. after a power glitch
		s.initialized = false
		return ErrNotCalibrated
	}
	rawHum, rawTemp := decodeRaw(s.buf[1:])
	s.lastHum = convertHumidity(rawHum)
	s.lastTemp = convertTemperature(rawTemp)
	return nil
}

// decodeRaw unpacks the five data bytes into the 20-bit humidity and
// temperature counts. The middle byte is split: high nibble belongs to
// humidity, low nibble to temperature.
func decodeRaw(data []byte) (uint32, uint32) {
	hum := uint32(data[0])<<12 | uint32(data[1])<<4 | uint32(data[2])>>4
	temp := (uint32(data[2])&0x0F)<<16 | uint32(data[3])<<8 | uint32(data[4])
	return hum, temp
}

// Conversion formulas from the datasheet:
// RH(%) = raw / 2^20 * 100
// T(C)  = raw / 2^20 * 200 - 50
func convertHumidity(raw uint32) float32 {
	return float32(raw) / 1048576.0 * 100.0
}

func convertTemperature(raw uint32) float32 {
	return float32(raw)/1048576.0*200.0 - 50.0
}
