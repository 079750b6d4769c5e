package di

import (
	"math"
	"testing"
)

func TestNewContainer(t *testing.T) {
	config := Config{
		ConditionTolerance: 1e8,
		ConditionNorm:      2,
	}

	container, err := NewContainer(config)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}

	if container == nil {
		t.Fatal("NewContainer() returned nil container")
	}

	// Verify that dependencies are properly initialized
	if container.Inverter() == nil {
		t.Error("Container should have a non-nil inversion engine")
	}

	// Verify config is stored correctly
	storedConfig := container.Config()
	if storedConfig.ConditionTolerance != config.ConditionTolerance {
		t.Errorf("Expected condition tolerance %v, got %v", config.ConditionTolerance, storedConfig.ConditionTolerance)
	}

	if storedConfig.ConditionNorm != config.ConditionNorm {
		t.Errorf("Expected condition norm %v, got %v", config.ConditionNorm, storedConfig.ConditionNorm)
	}
}

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	if container == nil {
		t.Fatal("NewContainerWithDefaults() returned nil container")
	}

	// Verify that default configuration is used
	config := container.Config()
	defaultConfig := DefaultConfig()

	if config.ConditionTolerance != defaultConfig.ConditionTolerance {
		t.Errorf("Expected default condition tolerance %v, got %v", defaultConfig.ConditionTolerance, config.ConditionTolerance)
	}

	if config.ConditionNorm != defaultConfig.ConditionNorm {
		t.Errorf("Expected default condition norm %v, got %v", defaultConfig.ConditionNorm, config.ConditionNorm)
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	invalidConfig := Config{
		ConditionTolerance: 0.5, // Invalid: must be >= 1
		ConditionNorm:      1,
	}

	_, err := NewContainer(invalidConfig)
	if err == nil {
		t.Error("NewContainer() should fail with invalid config")
	}
}

func TestContainerSingletonBehavior(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	// Call the getter multiple times to ensure it returns the same instance
	inverter1 := container.Inverter()
	inverter2 := container.Inverter()

	if inverter1 != inverter2 {
		t.Error("Inverter() should return the same instance (singleton behavior)")
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero values use defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "default config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "explicit valid values",
			config: Config{
				ConditionTolerance: 1e6,
				ConditionNorm:      math.Inf(1),
			},
			wantErr: false,
		},
		{
			name: "tolerance below one",
			config: Config{
				ConditionTolerance: 0.25,
			},
			wantErr: true,
		},
		{
			name: "unsupported norm",
			config: Config{
				ConditionNorm: 3,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate() should have returned an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() returned unexpected error: %v", err)
			}
		})
	}
}

func TestNewResolver(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	resolver := NewResolver(container)
	if resolver == nil {
		t.Fatal("NewResolver() returned nil resolver")
	}
}
