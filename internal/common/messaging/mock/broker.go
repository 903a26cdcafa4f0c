package mock

import (
	"testing"

	"github.com/Shopify/sarama"
)

// NewMockBroker wires a sarama MockBroker with the responses a consumer
// group needs to join, sync and fetch from a single partition topic.
func NewMockBroker(t *testing.T, group, topic string) *sarama.MockBroker {
	t.Helper()

	broker := sarama.NewMockBroker(t, 0)

	metadataResponse := sarama.NewMockMetadataResponse(t).
		SetBroker(broker.Addr(), broker.BrokerID()).
		SetLeader(topic, 0, broker.BrokerID()).
		SetController(broker.BrokerID())

	produceResponse := sarama.NewMockProduceResponse(t).
		SetError(topic, 0, sarama.ErrNoError)

	offsetResponse := sarama.NewMockOffsetResponse(t).
		SetOffset(topic, 0, sarama.OffsetOldest, 0).
		SetOffset(topic, 0, sarama.OffsetNewest, 1)

	fetchResponse := sarama.NewMockFetchResponse(t, 1).
		SetMessage(topic, 0, 0, sarama.StringEncoder(`{}`))

	coordinatorResponse := sarama.NewMockFindCoordinatorResponse(t).
		SetCoordinator(sarama.CoordinatorGroup, group, broker)

	joinGroupResponse := sarama.NewMockJoinGroupResponse(t)

	syncGroupResponse := sarama.NewMockSyncGroupResponse(t).
		SetMemberAssignment(&sarama.ConsumerGroupMemberAssignment{
			Version: 0,
			Topics:  map[string][]int32{topic: {0}},
		})

	heartbeatResponse := sarama.NewMockHeartbeatResponse(t)

	offsetFetchResponse := sarama.NewMockOffsetFetchResponse(t).
		SetOffset(group, topic, 0, 0, "", sarama.ErrNoError)

	apiVersionsResponse := sarama.NewMockApiVersionsResponse(t)

	broker.SetHandlerByMap(map[string]sarama.MockResponse{
		"MetadataRequest":        metadataResponse,
		"ProduceRequest":         produceResponse,
		"OffsetRequest":          offsetResponse,
		"OffsetFetchRequest":     offsetFetchResponse,
		"FetchRequest":           fetchResponse,
		"FindCoordinatorRequest": coordinatorResponse,
		"JoinGroupRequest":       joinGroupResponse,
		"SyncGroupRequest":       syncGroupResponse,
		"HeartbeatRequest":       heartbeatResponse,
		"ApiVersionsRequest":     apiVersionsResponse,
	})

	return broker
}
