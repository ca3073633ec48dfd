package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-31"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "Version: v1.0.0") ||
		!contains(output, "Commit: abcd1234") ||
		!contains(output, "Build: 2026-08-31") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		mongoURI, mongoDB,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtAccessExp, jwtRefreshExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// MongoDB
	if mongoURI != "mongodb://localhost:27017" || mongoDB != "rex" {
		t.Errorf("unexpected mongo config: %v/%v", mongoURI, mongoDB)
	}

	// Kafka
	if kafkaAddr != "" || kafkaTopic != "rex-events" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaAddr, kafkaTopic)
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtAccessExp != 30 || jwtRefreshExp != 168 {
		t.Errorf("unexpected jwt config: %v/%v/%v", jwtSecret, jwtAccessExp, jwtRefreshExp)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("MONGO_URI", "mongodb://mongo.example.com:27018")
	os.Setenv("MONGO_DB", "rextest")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "events")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_ACCESS_EXP_MINUTE", "15")
	os.Setenv("JWT_REFRESH_EXP_HOUR", "24")

	appHost, appPort, logLevel,
		mongoURI, mongoDB,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtAccessExp, jwtRefreshExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Check all variables
	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if mongoURI != "mongodb://mongo.example.com:27018" || mongoDB != "rextest" {
		t.Errorf("unexpected mongo config")
	}
	if kafkaAddr != "kafka.example.com:9092" || kafkaTopic != "events" {
		t.Errorf("unexpected kafka config")
	}
	if jwtSecret != "supersecret" || jwtAccessExp != 15 || jwtRefreshExp != 24 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_InvalidAccessExp(t *testing.T) {
	resetEnv()
	os.Setenv("JWT_ACCESS_EXP_MINUTE", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid JWT_ACCESS_EXP_MINUTE")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ MongoDB container ------------------
	mongoReq := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: mongoReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer mongoContainer.Terminate(ctx)

	mongoHost, _ := mongoContainer.Host(ctx)
	mongoPort, _ := mongoContainer.MappedPort(ctx, "27017")
	mongoURI := fmt.Sprintf("mongodb://%s:%d", mongoHost, mongoPort.Int())

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx,
			"127.0.0.1", "8086", "debug", // appHost, appPort, logLevel
			mongoURI, "testdb", // Mongo
			"", "rex-events", // Kafka disabled
			"testsecret", 30, 168, // JWT
		)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
