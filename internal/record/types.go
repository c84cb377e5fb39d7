// Package record implements the STDF v4 record codec: per-record-type
// decoding (C2) and type/sub dispatch (C3).
//
// Field layouts below mirror the STDF v4 record definitions in
// deps/cystdf/stdf4_src/stdf4_types.h, field-for-field and in declaration
// order. Every optional trailing field decodes through an internal/wire
// Cursor, which yields the zero value and leaves the cursor untouched when
// the field's bytes are not fully present — callers never see a partial
// read.
package record

import "github.com/stdf-go/stdfcore/internal/wire"

// Typ and Sub values from stdf4_types.h's REC_TYP/REC_SUB enums.
const (
	TypInfo     uint8 = 0
	TypPerLot   uint8 = 1
	TypPerWafer uint8 = 2
	TypPerPart  uint8 = 5
	TypPerTest  uint8 = 10
	TypPerExec  uint8 = 15
	TypPerProg  uint8 = 20
	TypGeneric  uint8 = 50

	SubFAR uint8 = 10
	SubATR uint8 = 20
	SubMIR uint8 = 10
	SubMRR uint8 = 20
	SubPCR uint8 = 30
	SubHBR uint8 = 40
	SubSBR uint8 = 50
	SubPMR uint8 = 60
	SubPGR uint8 = 62
	SubPLR uint8 = 63
	SubRDR uint8 = 70
	SubSDR uint8 = 80
	SubWIR uint8 = 10
	SubWRR uint8 = 20
	SubWCR uint8 = 30
	SubPIR uint8 = 10
	SubPRR uint8 = 20
	SubTSR uint8 = 30
	SubPTR uint8 = 10
	SubMPR uint8 = 15
	SubFTR uint8 = 20
	SubBPS uint8 = 10
	SubEPS uint8 = 20
	SubGDR uint8 = 10
	SubDTR uint8 = 30
)

// RecordTag is a fully-qualified (typ,sub) dispatch key, uint16(typ)<<8|sub.
// Using the combined key rather than separate typ/sub comparisons avoids the
// reference implementation's overlapping REC_* constants (e.g. ATR and VUR
// share REC_TYP_INFO<<8|20 in some readings; this port never compares typ
// and sub independently).
type RecordTag uint16

func tag(typ, sub uint8) RecordTag { return RecordTag(uint16(typ)<<8 | uint16(sub)) }

var (
	TagFAR = tag(TypInfo, SubFAR)
	TagATR = tag(TypInfo, SubATR)
	TagMIR = tag(TypPerLot, SubMIR)
	TagMRR = tag(TypPerLot, SubMRR)
	TagPCR = tag(TypPerLot, SubPCR)
	TagHBR = tag(TypPerLot, SubHBR)
	TagSBR = tag(TypPerLot, SubSBR)
	TagPMR = tag(TypPerLot, SubPMR)
	TagPGR = tag(TypPerLot, SubPGR)
	TagPLR = tag(TypPerLot, SubPLR)
	TagRDR = tag(TypPerLot, SubRDR)
	TagSDR = tag(TypPerLot, SubSDR)
	TagWIR = tag(TypPerWafer, SubWIR)
	TagWRR = tag(TypPerWafer, SubWRR)
	TagWCR = tag(TypPerWafer, SubWCR)
	TagPIR = tag(TypPerPart, SubPIR)
	TagPRR = tag(TypPerPart, SubPRR)
	TagTSR = tag(TypPerTest, SubTSR)
	TagPTR = tag(TypPerExec, SubPTR)
	TagMPR = tag(TypPerExec, SubMPR)
	TagFTR = tag(TypPerExec, SubFTR)
	TagBPS = tag(TypPerProg, SubBPS)
	TagEPS = tag(TypPerProg, SubEPS)
	TagGDR = tag(TypGeneric, SubGDR)
	TagDTR = tag(TypGeneric, SubDTR)
)

// FAR is the File Attributes Record: the first record of every STDF file,
// decoded with a byte-order-agnostic Cursor since its two fields are single
// bytes and establish the stream's byte order for everything after it.
type FAR struct {
	CPUType uint8 // CPU type that wrote this file
	StdfVer uint8 // STDF version number
}

// ATR is the Audit Trail Record.
type ATR struct {
	ModTim  uint32 // date and time of STDF file modification
	CmdLine string // command line of program
}

// MIR is the Master Information Record.
type MIR struct {
	SetupT  uint32 // date and time of job setup
	StartT  uint32 // date and time first part tested
	StatNum uint8  // tester station number
	ModeCod byte   // test mode code
	RtstCod byte   // lot retest code
	ProtCod byte   // data protection code
	BurnTim uint16 // burn-in time in minutes
	CmodCod byte   // command mode code
	LotID   string
	PartTyp string
	NodeNam string
	TstrTyp string
	JobNam  string
	JobRev  string
	SblotID string
	OperNam string
	ExecTyp string
	ExecVer string
	TestCod string
	TstTemp string
	UserTxt string
	AuxFile string
	PkgTyp  string
	FamlyID string
	DateCod string
	FacilID string
	FloorID string
	ProcID  string
	OperFrq string
	SpecNam string
	SpecVer string
	FlowID  string
	SetupID string
	DsgnRev string
	EngID   string
	RomCod  string
	SerlNum string
	SuprNam string
}

// MRR is the Master Result Record, the last record of a lot.
type MRR struct {
	FinishT uint32
	DispCod byte
	UsrDesc string
	ExcDesc string
}

// PCR is the Part Count Record.
type PCR struct {
	HeadNum uint8
	SiteNum uint8
	PartCnt uint32
	RtstCnt uint32
	AbrtCnt uint32
	GoodCnt uint32
	FuncCnt uint32
}

// HBR is the Hardware Bin Record.
type HBR struct {
	HeadNum uint8
	SiteNum uint8
	HbinNum uint16
	HbinCnt uint32
	HbinPf  byte
	HbinNam string
}

// SBR is the Software Bin Record.
type SBR struct {
	HeadNum uint8
	SiteNum uint8
	SbinNum uint16
	SbinCnt uint32
	SbinPf  byte
	SbinNam string
}

// PMR is the Pin Map Record. HeadNum/SiteNum default to 1 when the trailing
// fields are absent, per the convention the spec assigns this record (the
// original C decoder has no such default; this is a deliberate deviation
// preserved here).
type PMR struct {
	PmrIndx uint16
	ChanTyp uint16
	ChanNam string
	PhyNam  string
	LogNam  string
	HeadNum uint8
	SiteNum uint8
}

// PGR is the Pin Group Record.
type PGR struct {
	GrpIndx uint16
	GrpNam  string
	IndxCnt uint16
	PmrIndx []uint16
}

// PLR is the Pin List Record.
type PLR struct {
	GrpCnt   uint16
	GrpIndx  []uint16
	GrpMode  []uint16
	GrpRadx  []uint8
	PgmChar  []string
	RtnChar  []string
	PgmChal  []string
	RtnChal  []string
}

// RDR is the Retest Data Record.
type RDR struct {
	NumBins uint16
	RtstBin []uint16
}

// SDR is the Site Description Record.
type SDR struct {
	HeadNum uint8
	SiteGrp uint8
	SiteCnt uint8
	SiteNum []uint8
	HandTyp string
	HandID  string
	CardTyp string
	CardID  string
	LoadTyp string
	LoadID  string
	DibTyp  string
	DibID   string
	CablTyp string
	CablID  string
	ContTyp string
	ContID  string
	LasrTyp string
	LasrID  string
	ExtrTyp string
	ExtrID  string
}

// WIR is the Wafer Information Record.
type WIR struct {
	HeadNum uint8
	SiteGrp uint8
	StartT  uint32
	WaferID string
}

// WRR is the Wafer Result Record.
type WRR struct {
	HeadNum uint8
	SiteGrp uint8
	FinishT uint32
	PartCnt uint32
	RtstCnt uint32
	AbrtCnt uint32
	GoodCnt uint32
	FuncCnt uint32
	WaferID string
	FabwfID string
	FrameID string
	MaskID  string
	UsrDesc string
	ExcDesc string
}

// WCR is the Wafer Configuration Record.
type WCR struct {
	WafrSiz float32
	DieHt   float32
	DieWid  float32
	WfUnits uint8
	WfFlat  byte
	CenterX int16
	CenterY int16
	PosX    byte
	PosY    byte
}

// PIR is the Part Information Record.
type PIR struct {
	HeadNum uint8
	SiteNum uint8
}

// PRR is the Part Result Record.
type PRR struct {
	HeadNum uint8
	SiteNum uint8
	PartFlg byte
	NumTest uint16
	HardBin uint16
	SoftBin uint16
	XCoord  int16
	YCoord  int16
	TestT   uint32
	PartID  string
	PartTxt string
	PartFix []byte
}

// TSR is the Test Synopsis Record.
type TSR struct {
	HeadNum uint8
	SiteNum uint8
	TestTyp byte
	TestNum uint32
	ExecCnt uint32
	FailCnt uint32
	AlrmCnt uint32
	TestNam string
	SeqName string
	TestLbl string
	OptFlag byte
	TestTim float32
	TestMin float32
	TestMax float32
	TstSums float32
	TstSqrs float32
}

// PTR is the Parametric Test Record.
type PTR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	ParmFlg byte
	Result  float32
	TestTxt string
	AlarmID string
	OptFlag byte
	ResScal int8
	LlmScal int8
	HlmScal int8
	LoLimit float32
	HiLimit float32
	Units   string
	CResfmt string
	CLlmfmt string
	CHlmfmt string
	LoSpec  float32
	HiSpec  float32
}

// MPR is the Multiple-Result Parametric Record.
type MPR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	ParmFlg byte
	RtnIcnt uint16
	RsltCnt uint16
	RtnStat []uint8
	RtnRslt []float32
	TestTxt string
	AlarmID string
	OptFlag byte
	ResScal int8
	LlmScal int8
	HlmScal int8
	LoLimit float32
	HiLimit float32
	StartIn float32
	IncrIn  float32
	RtnIndx []uint16
	Units   string
	UnitsIn string
	CResfmt string
	CLlmfmt string
	CHlmfmt string
	LoSpec  float32
	HiSpec  float32
}

// FTR is the Functional Test Record.
type FTR struct {
	TestNum uint32
	HeadNum uint8
	SiteNum uint8
	TestFlg byte
	OptFlag byte
	CyclCnt uint32
	RelVadr uint32
	ReptCnt uint32
	NumFail uint32
	XfailAd int32
	YfailAd int32
	VectOff int16
	RtnIcnt uint16
	PgmIcnt uint16
	RtnIndx []uint16
	RtnStat []uint8
	PgmIndx []uint16
	PgmStat []uint8
	FailPin []byte
	VectNam string
	TimeSet string
	OpCode  string
	TestTxt string
	AlarmID string
	ProgTxt string
	RsltTxt string
	PatgNum uint8
	SpinMap []byte
}

// BPS is the Begin Program Section Record.
type BPS struct {
	SeqName string
}

// EPS is the End Program Section Record. It carries no fields.
type EPS struct{}

// GDR is the Generic Data Record: a heterogeneous sequence of tagged values.
type GDR struct {
	FldCnt  uint16
	GenData []wire.GenericValue
}

// DTR is the Datalog Text Record.
type DTR struct {
	TextDat string
}
