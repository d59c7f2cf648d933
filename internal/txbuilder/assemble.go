package txbuilder

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/pb"
)

// SignModeDirect mirrors cosmos-sdk's SIGN_MODE_DIRECT constant; the
// solo machine never signs in any other mode.
const SignModeDirect int32 = 1

// AssembleTx builds, signs, and encodes a complete TxRaw from an ordered
// list of messages, per §4.3's transaction-assembly rules: one
// SignerInfo over the broadcasting account's current sequence, a single
// SIGN_MODE_DIRECT signature over {body_bytes, auth_info_bytes,
// chain_id, account_number}.
func (b *Builder) AssembleTx(ctx context.Context, chainID string, accountNumber, accountSequence uint64, messages []*pb.Any, memo string) (*pb.TxRaw, error) {
	body := &pb.TxBody{Messages: messages, Memo: memo}
	bodyBytes, err := codec.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling tx body: %w", err)
	}

	publicKey, err := b.Signer.ToPublicKey()
	if err != nil {
		return nil, fmt.Errorf("fetching signer public key: %w", err)
	}
	publicKeyAny, err := codec.PublicKeyToAny(publicKey)
	if err != nil {
		return nil, err
	}

	authInfo := &pb.AuthInfo{
		SignerInfos: []*pb.SignerInfo{{
			PublicKey: publicKeyAny,
			ModeInfo:  &pb.ModeInfo{Single: &pb.ModeInfoSingle{Mode: SignModeDirect}},
			Sequence:  accountSequence,
		}},
		Fee: &pb.Fee{
			Amount:   []*pb.Coin{{Denom: b.FeeDenom, Amount: b.FeeAmount}},
			GasLimit: b.FeeGasLimit,
		},
	}
	authInfoBytes, err := codec.Marshal(authInfo)
	if err != nil {
		return nil, fmt.Errorf("marshaling auth info: %w", err)
	}

	signDoc := &pb.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       chainID,
		AccountNumber: accountNumber,
	}
	signDocBytes, err := codec.Marshal(signDoc)
	if err != nil {
		return nil, fmt.Errorf("marshaling sign doc: %w", err)
	}
	signature, err := b.Signer.Sign(ctx, nil, cryptokeys.NewSignDocMessage(signDocBytes))
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}

	return &pb.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{signature},
	}, nil
}
