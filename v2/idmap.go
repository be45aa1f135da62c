package v2

// v22to24 is the fixed bidirectional identifier map between ID3v2.2's
// three-letter frame identifiers and their ID3v2.3/2.4 four-letter
// equivalents, per spec §3/§6's "fixed bidirectional map". Grounded on
// mikkyang-id3-go's id3v23.go V23DeprecatedTypeMap, corrected (WPB had
// been left un-expanded to WPUB in the teacher) and extended with the
// handful of v2.2 identifiers the teacher's map omitted (CNT, IPL,
// LNK) so every entry the original ID3v2.2 specification defines has a
// home, keeping the map injective both ways.
var v22to24 = map[string]string{
	"BUF": "RBUF", "CNT": "PCNT", "COM": "COMM", "CRA": "AENC",
	"EQU": "EQUA", "ETC": "ETCO", "GEO": "GEOB",
	"IPL": "IPLS", "LNK": "LINK", "MCI": "MCDI", "MLL": "MLLT",
	"PIC": "APIC", "POP": "POPM", "REV": "RVRB", "RVA": "RVAD",
	"SLT": "SYLT", "STC": "SYTC", "TAL": "TALB", "TBP": "TBPM",
	"TCM": "TCOM", "TCO": "TCON", "TCR": "TCOP", "TDA": "TDAT",
	"TDY": "TDLY", "TEN": "TENC", "TFT": "TFLT", "TIM": "TIME",
	"TKE": "TKEY", "TLA": "TLAN", "TLE": "TLEN", "TMT": "TMED",
	"TOA": "TOPE", "TOF": "TOFN", "TOL": "TOLY", "TOR": "TORY",
	"TOT": "TOAL", "TP1": "TPE1", "TP2": "TPE2", "TP3": "TPE3",
	"TP4": "TPE4", "TPA": "TPOS", "TPB": "TPUB", "TRC": "TSRC",
	"TRD": "TRDA", "TRK": "TRCK", "TSI": "TSIZ", "TSS": "TSSE",
	"TT1": "TIT1", "TT2": "TIT2", "TT3": "TIT3", "TXT": "TEXT",
	"TXX": "TXXX", "TYE": "TYER", "UFI": "UFID", "ULT": "USLT",
	"WAF": "WOAF", "WAR": "WOAR", "WAS": "WOAS", "WCM": "WCOM",
	"WCP": "WCOP", "WPB": "WPUB", "WXX": "WXXX",
}

var v24to22 map[string]string

func init() {
	v24to22 = make(map[string]string, len(v22to24))
	for short, long := range v22to24 {
		v24to22[long] = short
	}
}

// normalizeFrameID translates a v2.2 three-letter identifier to its
// v2.3/2.4 four-letter form. Identifiers the map doesn't know (custom
// or experimental ids, for example) pass through unchanged, per the
// "consistent with identifier prefix rules" invariant: an unrecognized
// v2.2 id still round-trips as
// itself rather than erroring.
func normalizeFrameID(id string) string {
	if len(id) != 3 {
		return id
	}
	if mapped, ok := v22to24[id]; ok {
		return mapped
	}
	return id
}

// downgradeFrameID translates a four-letter identifier back to its
// three-letter v2.2 form when writing a v2.2 tag. ok is false when no
// v2.2 equivalent exists (the frame kind has no v2.2 representation).
func downgradeFrameID(id string) (string, bool) {
	short, ok := v24to22[id]
	return short, ok
}
