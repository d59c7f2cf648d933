package cryptokeys

// SignatureData is the tagged union carried alongside a proof: either a
// single raw signature, or a multisig combination of child signatures
// selected by a CompactBitArray.
type SignatureData interface {
	isSignatureData()
}

// SingleSignatureData wraps one raw signature.
type SingleSignatureData struct {
	Signature []byte
}

func (SingleSignatureData) isSignatureData() {}

// MultiSignatureData wraps the child signatures referenced by Bitarray,
// in bitarray order.
type MultiSignatureData struct {
	Bitarray   *CompactBitArray
	Signatures []SignatureData
}

func (MultiSignatureData) isSignatureData() {}
