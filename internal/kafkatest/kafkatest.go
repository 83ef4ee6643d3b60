// Package kafkatest starts a throwaway Zookeeper + Kafka pair for
// integration tests and provides read helpers for asserting on published
// messages.
package kafkatest

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

const confluentVersion = "7.5.0"

// Broker is a running single-node Kafka reachable from the test host.
type Broker struct {
	bootstrap string
}

// Start launches Zookeeper and Kafka on a private network and returns a
// Broker. All resources are cleaned up via t.Cleanup in reverse start order.
// Tests are skipped in -short mode.
func Start(t *testing.T) *Broker {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	innerNet, err := network.New(ctx,
		network.WithDriver("bridge"),
		network.WithLabels(map[string]string{"careeragent-test": "true"}),
	)
	if err != nil {
		t.Fatalf("kafkatest: create network: %v", err)
	}
	t.Cleanup(func() {
		innerNet.Remove(context.Background()) //nolint:errcheck
	})

	zkReq := testcontainers.ContainerRequest{
		Image:        fmt.Sprintf("confluentinc/cp-zookeeper:%s", confluentVersion),
		ExposedPorts: []string{"2181/tcp"},
		Env: map[string]string{
			"ZOOKEEPER_CLIENT_PORT": "2181",
			"ZOOKEEPER_TICK_TIME":   "2000",
		},
		Networks: []string{innerNet.Name},
		NetworkAliases: map[string][]string{
			innerNet.Name: {"zookeeper"},
		},
		WaitingFor: wait.ForLog("binding to port"),
	}
	zk, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: zkReq,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("kafkatest: start zookeeper: %v", err)
	}
	t.Cleanup(func() {
		zk.Terminate(context.Background()) //nolint:errcheck
	})

	// The advertised listener must be baked into the environment before the
	// broker starts, so grab a free host port up front.
	freePort, err := getFreePort()
	if err != nil {
		t.Fatalf("kafkatest: find free port: %v", err)
	}

	kafkaReq := testcontainers.ContainerRequest{
		Image:        fmt.Sprintf("confluentinc/cp-kafka:%s", confluentVersion),
		ExposedPorts: []string{fmt.Sprintf("%d:29092/tcp", freePort)},
		Env: map[string]string{
			"KAFKA_BROKER_ID":                                "1",
			"KAFKA_ZOOKEEPER_CONNECT":                        "zookeeper:2181",
			"KAFKA_LISTENERS":                                "PLAINTEXT://0.0.0.0:9092,PLAINTEXT_HOST://0.0.0.0:29092",
			"KAFKA_ADVERTISED_LISTENERS":                     fmt.Sprintf("PLAINTEXT://kafka:9092,PLAINTEXT_HOST://localhost:%d", freePort),
			"KAFKA_LISTENER_SECURITY_PROTOCOL_MAP":           "PLAINTEXT:PLAINTEXT,PLAINTEXT_HOST:PLAINTEXT",
			"KAFKA_INTER_BROKER_LISTENER_NAME":               "PLAINTEXT",
			"KAFKA_OFFSETS_TOPIC_REPLICATION_FACTOR":         "1",
			"KAFKA_DEFAULT_REPLICATION_FACTOR":               "1",
			"KAFKA_MIN_INSYNC_REPLICAS":                      "1",
			"KAFKA_TRANSACTION_STATE_LOG_REPLICATION_FACTOR": "1",
			"KAFKA_TRANSACTION_STATE_LOG_MIN_ISR":            "1",
		},
		Networks: []string{innerNet.Name},
		NetworkAliases: map[string][]string{
			innerNet.Name: {"kafka"},
		},
		WaitingFor: wait.ForLog("started (kafka.server.KafkaServer)"),
	}
	kafka, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: kafkaReq,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("kafkatest: start broker: %v", err)
	}
	t.Cleanup(func() {
		kafka.Terminate(context.Background()) //nolint:errcheck
	})

	host, err := kafka.Host(ctx)
	if err != nil {
		t.Fatalf("kafkatest: resolve host: %v", err)
	}
	port, err := kafka.MappedPort(ctx, nat.Port("29092/tcp"))
	if err != nil {
		t.Fatalf("kafkatest: resolve mapped port: %v", err)
	}

	return &Broker{bootstrap: fmt.Sprintf("%s:%s", host, port.Port())}
}

// BootstrapServers returns "host:port" for connecting from the test host.
func (b *Broker) BootstrapServers() string {
	return b.bootstrap
}

// ReadAll consumes every message currently in the topic and returns their
// values. It queries the broker for end offsets first so it knows exactly
// how many messages to read.
func (b *Broker) ReadAll(t *testing.T, topic string) [][]byte {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adminClient, err := kgo.NewClient(kgo.SeedBrokers(b.bootstrap))
	if err != nil {
		t.Fatalf("kafkatest: connect admin: %v", err)
	}
	admin := kadm.NewClient(adminClient)
	endOffsets, err := admin.ListEndOffsets(ctx, topic)
	adminClient.Close()
	if err != nil {
		t.Fatalf("kafkatest: list end offsets: %v", err)
	}

	var total int64
	endOffsets.Each(func(o kadm.ListedOffset) {
		if o.Err == nil && o.Partition >= 0 {
			total += o.Offset
		}
	})
	if total == 0 {
		return nil
	}

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(b.bootstrap),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		t.Fatalf("kafkatest: create consumer: %v", err)
	}
	defer consumer.Close()

	messages := make([][]byte, 0, total)
	for int64(len(messages)) < total {
		fetches := consumer.PollFetches(ctx)
		if err := fetches.Err(); err != nil {
			t.Fatalf("kafkatest: fetch: %v", err)
		}
		fetches.EachRecord(func(r *kgo.Record) {
			messages = append(messages, r.Value)
		})
	}
	return messages
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
