package record

import "github.com/stdf-go/stdfcore/internal/wire"

// DecodeFAR decodes a File Attributes Record body. c's Order is irrelevant:
// both fields are single bytes.
func DecodeFAR(c *wire.Cursor) FAR {
	return FAR{CPUType: c.U1(), StdfVer: c.U1()}
}

func DecodeATR(c *wire.Cursor) ATR {
	return ATR{ModTim: c.U4(), CmdLine: c.Cn()}
}

func DecodeMIR(c *wire.Cursor) MIR {
	return MIR{
		SetupT:  c.U4(),
		StartT:  c.U4(),
		StatNum: c.U1(),
		ModeCod: c.C1(),
		RtstCod: c.C1(),
		ProtCod: c.C1(),
		BurnTim: c.U2(),
		CmodCod: c.C1(),
		LotID:   c.Cn(),
		PartTyp: c.Cn(),
		NodeNam: c.Cn(),
		TstrTyp: c.Cn(),
		JobNam:  c.Cn(),
		JobRev:  c.Cn(),
		SblotID: c.Cn(),
		OperNam: c.Cn(),
		ExecTyp: c.Cn(),
		ExecVer: c.Cn(),
		TestCod: c.Cn(),
		TstTemp: c.Cn(),
		UserTxt: c.Cn(),
		AuxFile: c.Cn(),
		PkgTyp:  c.Cn(),
		FamlyID: c.Cn(),
		DateCod: c.Cn(),
		FacilID: c.Cn(),
		FloorID: c.Cn(),
		ProcID:  c.Cn(),
		OperFrq: c.Cn(),
		SpecNam: c.Cn(),
		SpecVer: c.Cn(),
		FlowID:  c.Cn(),
		SetupID: c.Cn(),
		DsgnRev: c.Cn(),
		EngID:   c.Cn(),
		RomCod:  c.Cn(),
		SerlNum: c.Cn(),
		SuprNam: c.Cn(),
	}
}

func DecodeMRR(c *wire.Cursor) MRR {
	return MRR{
		FinishT: c.U4(),
		DispCod: c.C1(),
		UsrDesc: c.Cn(),
		ExcDesc: c.Cn(),
	}
}

func DecodePCR(c *wire.Cursor) PCR {
	return PCR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		PartCnt: c.U4(),
		RtstCnt: c.U4(),
		AbrtCnt: c.U4(),
		GoodCnt: c.U4(),
		FuncCnt: c.U4(),
	}
}

func DecodeHBR(c *wire.Cursor) HBR {
	return HBR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		HbinNum: c.U2(),
		HbinCnt: c.U4(),
		HbinPf:  c.C1(),
		HbinNam: c.Cn(),
	}
}

func DecodeSBR(c *wire.Cursor) SBR {
	return SBR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		SbinNum: c.U2(),
		SbinCnt: c.U4(),
		SbinPf:  c.C1(),
		SbinNam: c.Cn(),
	}
}

// DecodePMR decodes a Pin Map Record. HeadNum/SiteNum default to 1 when
// their bytes are not present in the record body.
func DecodePMR(c *wire.Cursor) PMR {
	p := PMR{
		PmrIndx: c.U2(),
		ChanTyp: c.U2(),
		ChanNam: c.Cn(),
		PhyNam:  c.Cn(),
		LogNam:  c.Cn(),
	}
	before := c.Pos()
	p.HeadNum = c.U1()
	if c.Pos() == before {
		p.HeadNum = 1
	}
	before = c.Pos()
	p.SiteNum = c.U1()
	if c.Pos() == before {
		p.SiteNum = 1
	}
	return p
}

func DecodePGR(c *wire.Cursor) PGR {
	p := PGR{
		GrpIndx: c.U2(),
		GrpNam:  c.Cn(),
		IndxCnt: c.U2(),
	}
	p.PmrIndx = c.KxU2(int(p.IndxCnt))
	return p
}

func DecodePLR(c *wire.Cursor) PLR {
	p := PLR{GrpCnt: c.U2()}
	k := int(p.GrpCnt)
	p.GrpIndx = c.KxU2(k)
	p.GrpMode = c.KxU2(k)
	p.GrpRadx = c.KxU1(k)
	p.PgmChar = c.KxCn(k)
	p.RtnChar = c.KxCn(k)
	p.PgmChal = c.KxCn(k)
	p.RtnChal = c.KxCn(k)
	return p
}

func DecodeRDR(c *wire.Cursor) RDR {
	r := RDR{NumBins: c.U2()}
	r.RtstBin = c.KxU2(int(r.NumBins))
	return r
}

func DecodeSDR(c *wire.Cursor) SDR {
	s := SDR{
		HeadNum: c.U1(),
		SiteGrp: c.U1(),
		SiteCnt: c.U1(),
	}
	s.SiteNum = c.KxU1(int(s.SiteCnt))
	s.HandTyp = c.Cn()
	s.HandID = c.Cn()
	s.CardTyp = c.Cn()
	s.CardID = c.Cn()
	s.LoadTyp = c.Cn()
	s.LoadID = c.Cn()
	s.DibTyp = c.Cn()
	s.DibID = c.Cn()
	s.CablTyp = c.Cn()
	s.CablID = c.Cn()
	s.ContTyp = c.Cn()
	s.ContID = c.Cn()
	s.LasrTyp = c.Cn()
	s.LasrID = c.Cn()
	s.ExtrTyp = c.Cn()
	s.ExtrID = c.Cn()
	return s
}

func DecodeWIR(c *wire.Cursor) WIR {
	return WIR{
		HeadNum: c.U1(),
		SiteGrp: c.U1(),
		StartT:  c.U4(),
		WaferID: c.Cn(),
	}
}

func DecodeWRR(c *wire.Cursor) WRR {
	return WRR{
		HeadNum: c.U1(),
		SiteGrp: c.U1(),
		FinishT: c.U4(),
		PartCnt: c.U4(),
		RtstCnt: c.U4(),
		AbrtCnt: c.U4(),
		GoodCnt: c.U4(),
		FuncCnt: c.U4(),
		WaferID: c.Cn(),
		FabwfID: c.Cn(),
		FrameID: c.Cn(),
		MaskID:  c.Cn(),
		UsrDesc: c.Cn(),
		ExcDesc: c.Cn(),
	}
}

func DecodeWCR(c *wire.Cursor) WCR {
	return WCR{
		WafrSiz: c.R4(),
		DieHt:   c.R4(),
		DieWid:  c.R4(),
		WfUnits: c.U1(),
		WfFlat:  c.C1(),
		CenterX: c.I2(),
		CenterY: c.I2(),
		PosX:    c.C1(),
		PosY:    c.C1(),
	}
}

func DecodePIR(c *wire.Cursor) PIR {
	return PIR{HeadNum: c.U1(), SiteNum: c.U1()}
}

func DecodePRR(c *wire.Cursor) PRR {
	return PRR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		PartFlg: c.B1(),
		NumTest: c.U2(),
		HardBin: c.U2(),
		SoftBin: c.U2(),
		XCoord:  c.I2(),
		YCoord:  c.I2(),
		TestT:   c.U4(),
		PartID:  c.Cn(),
		PartTxt: c.Cn(),
		PartFix: c.Bn(),
	}
}

func DecodeTSR(c *wire.Cursor) TSR {
	return TSR{
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		TestTyp: c.C1(),
		TestNum: c.U4(),
		ExecCnt: c.U4(),
		FailCnt: c.U4(),
		AlrmCnt: c.U4(),
		TestNam: c.Cn(),
		SeqName: c.Cn(),
		TestLbl: c.Cn(),
		OptFlag: c.B1(),
		TestTim: c.R4(),
		TestMin: c.R4(),
		TestMax: c.R4(),
		TstSums: c.R4(),
		TstSqrs: c.R4(),
	}
}

func DecodePTR(c *wire.Cursor) PTR {
	return PTR{
		TestNum: c.U4(),
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		TestFlg: c.B1(),
		ParmFlg: c.B1(),
		Result:  c.R4(),
		TestTxt: c.Cn(),
		AlarmID: c.Cn(),
		OptFlag: c.B1(),
		ResScal: c.I1(),
		LlmScal: c.I1(),
		HlmScal: c.I1(),
		LoLimit: c.R4(),
		HiLimit: c.R4(),
		Units:   c.Cn(),
		CResfmt: c.Cn(),
		CLlmfmt: c.Cn(),
		CHlmfmt: c.Cn(),
		LoSpec:  c.R4(),
		HiSpec:  c.R4(),
	}
}

func DecodeMPR(c *wire.Cursor) MPR {
	m := MPR{
		TestNum: c.U4(),
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		TestFlg: c.B1(),
		ParmFlg: c.B1(),
		RtnIcnt: c.U2(),
		RsltCnt: c.U2(),
	}
	m.RtnStat = c.KxN1(int(m.RtnIcnt))
	m.RtnRslt = c.KxR4(int(m.RsltCnt))
	m.TestTxt = c.Cn()
	m.AlarmID = c.Cn()
	m.OptFlag = c.B1()
	m.ResScal = c.I1()
	m.LlmScal = c.I1()
	m.HlmScal = c.I1()
	m.LoLimit = c.R4()
	m.HiLimit = c.R4()
	m.StartIn = c.R4()
	m.IncrIn = c.R4()
	m.RtnIndx = c.KxU2(int(m.RtnIcnt))
	m.Units = c.Cn()
	m.UnitsIn = c.Cn()
	m.CResfmt = c.Cn()
	m.CLlmfmt = c.Cn()
	m.CHlmfmt = c.Cn()
	m.LoSpec = c.R4()
	m.HiSpec = c.R4()
	return m
}

func DecodeFTR(c *wire.Cursor) FTR {
	f := FTR{
		TestNum: c.U4(),
		HeadNum: c.U1(),
		SiteNum: c.U1(),
		TestFlg: c.B1(),
		OptFlag: c.B1(),
		CyclCnt: c.U4(),
		RelVadr: c.U4(),
		ReptCnt: c.U4(),
		NumFail: c.U4(),
		XfailAd: c.I4(),
		YfailAd: c.I4(),
		VectOff: c.I2(),
		RtnIcnt: c.U2(),
		PgmIcnt: c.U2(),
	}
	f.RtnIndx = c.KxU2(int(f.RtnIcnt))
	f.RtnStat = c.KxN1(int(f.RtnIcnt))
	f.PgmIndx = c.KxU2(int(f.PgmIcnt))
	f.PgmStat = c.KxN1(int(f.PgmIcnt))
	f.FailPin, _ = c.Dn()
	f.VectNam = c.Cn()
	f.TimeSet = c.Cn()
	f.OpCode = c.Cn()
	f.TestTxt = c.Cn()
	f.AlarmID = c.Cn()
	f.ProgTxt = c.Cn()
	f.RsltTxt = c.Cn()
	f.PatgNum = c.U1()
	f.SpinMap, _ = c.Dn()
	return f
}

func DecodeBPS(c *wire.Cursor) BPS {
	return BPS{SeqName: c.Cn()}
}

func DecodeEPS(c *wire.Cursor) EPS {
	_ = c
	return EPS{}
}

func DecodeGDR(c *wire.Cursor) GDR {
	g := GDR{FldCnt: c.U2()}
	g.GenData = make([]wire.GenericValue, 0, g.FldCnt)
	for i := 0; i < int(g.FldCnt); i++ {
		if c.Remaining() == 0 {
			break
		}
		g.GenData = append(g.GenData, c.Vn())
	}
	return g
}

func DecodeDTR(c *wire.Cursor) DTR {
	return DTR{TextDat: c.Cn()}
}
