package server

import (
	"testing"

	"carrothunt/pkg/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePacket(t *testing.T) {
	data, err := protocol.MarshalPacket(protocol.NewLikeRequestPacket("level1", "alice"))
	require.NoError(t, err)
	ev, err := DecodePacket(data)
	require.NoError(t, err)
	assert.Equal(t, EventLike, ev.Kind)
	assert.Equal(t, &LikeEvent{Level: "level1", User: "alice"}, ev.Like)

	data, err = protocol.MarshalPacket(protocol.NewRevokeRequestPacket("r"))
	require.NoError(t, err)
	ev, err = DecodePacket(data)
	require.NoError(t, err)
	assert.Equal(t, EventRevoke, ev.Kind)
	assert.Equal(t, "r", ev.Revoke.Receipt)

	data, err = protocol.MarshalPacket(&protocol.Packet{Type: protocol.MessageType(42)})
	require.NoError(t, err)
	_, err = DecodePacket(data)
	assert.ErrorIs(t, err, protocol.ErrUnknownType)

	_, err = DecodePacket([]byte{0xff})
	assert.ErrorIs(t, err, protocol.ErrTruncated)
}

func TestEncodeResult(t *testing.T) {
	data, err := EncodeResult(&protocol.LikeResult{Status: protocol.StatusDuplicate, Count: 3, Message: "m"})
	require.NoError(t, err)

	pkt, err := protocol.UnmarshalPacket(data)
	require.NoError(t, err)
	res, err := protocol.ParseLikeResult(pkt)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusDuplicate, res.Status)
	assert.EqualValues(t, 3, res.Count)
	assert.Equal(t, "m", res.Message)
}
