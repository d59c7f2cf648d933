package txbuilder

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/soloibc/solo-machine/internal/pb"
)

// IBCDenom computes "ibc/" + hex_upper(Sha256(port/channel/denom)), the
// local denom a token receives once it crosses the IBC boundary, per
// §4.5 and §8's get_ibc_denom property.
func IBCDenom(portID, channelID, denom string) string {
	trace := pb.DenomTrace{Path: portID + "/" + channelID, BaseDenom: denom}
	sum := sha256.Sum256([]byte(denomTraceString(trace)))
	return "ibc/" + strings.ToUpper(hex.EncodeToString(sum[:]))
}

// denomTraceString renders a DenomTrace the way the hash in IBCDenom
// expects: "{path}/{base_denom}", matching "{port}/{solo_channel_id}/{d}".
func denomTraceString(trace pb.DenomTrace) string {
	if trace.Path == "" {
		return trace.BaseDenom
	}
	return trace.Path + "/" + trace.BaseDenom
}

// BaseDenomFromTrace returns the final "/"-delimited segment of denom,
// the local credit target once a transfer packet's multi-hop trace is
// stripped away, per §4.5.
func BaseDenomFromTrace(denom string) string {
	idx := strings.LastIndex(denom, "/")
	if idx < 0 {
		return denom
	}
	return denom[idx+1:]
}
