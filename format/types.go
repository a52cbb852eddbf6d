package format

type (
	BlobType        uint8
	AlgorithmID     uint32
	ParamAttributes uint16
	CompressionType uint8
)

const (
	BlobTypePublicKey  BlobType = 0x06 // BlobTypePublicKey identifies a CryptoAPI public key blob.
	BlobTypePrivateKey BlobType = 0x07 // BlobTypePrivateKey identifies a CryptoAPI private key blob.

	AlgRSASign AlgorithmID = 0x00002400 // AlgRSASign is CALG_RSA_SIGN, the RSA signing algorithm.
	AlgRSAKeyX AlgorithmID = 0x0000A400 // AlgRSAKeyX is CALG_RSA_KEYX, the RSA key exchange algorithm.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ECMA-335 Param row attribute flags (II.23.1.13).
const (
	ParamAttrIn              ParamAttributes = 0x0001
	ParamAttrOut             ParamAttributes = 0x0002
	ParamAttrOptional        ParamAttributes = 0x0010
	ParamAttrHasDefault      ParamAttributes = 0x1000
	ParamAttrHasFieldMarshal ParamAttributes = 0x2000
)

func (b BlobType) String() string {
	switch b {
	case BlobTypePublicKey:
		return "PublicKey"
	case BlobTypePrivateKey:
		return "PrivateKey"
	default:
		return "Unknown"
	}
}

func (a AlgorithmID) String() string {
	switch a {
	case AlgRSASign:
		return "RSA-Sign"
	case AlgRSAKeyX:
		return "RSA-KeyX"
	default:
		return "Unknown"
	}
}

// IsIn reports whether the [in] flag is set.
func (p ParamAttributes) IsIn() bool { return p&ParamAttrIn != 0 }

// IsOut reports whether the [out] flag is set.
func (p ParamAttributes) IsOut() bool { return p&ParamAttrOut != 0 }

// IsOptional reports whether the [opt] flag is set.
func (p ParamAttributes) IsOptional() bool { return p&ParamAttrOptional != 0 }

// HasDefault reports whether the parameter has a default value constant.
func (p ParamAttributes) HasDefault() bool { return p&ParamAttrHasDefault != 0 }

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
