package analysis

import "strings"

// evidenceTerms is the fixed disjunctive list of evidentiary mentions.  A
// single occurrence of any term anywhere in the user text sets the evidence
// signal.  Keep this an explicit named list so it can be audited and extended
// without touching the scoring logic.
var evidenceTerms = []string{
	"증거",   // evidence
	"녹음",   // recording
	"캡처",   // screenshot
	"사진",   // photo
	"영상",   // video
	"문서",   // document
	"계약서",  // contract
	"영수증",  // receipt
	"메시지",  // message
	"카톡",   // KakaoTalk log
	"문자",   // text message
}

// HasEvidenceSignal reports whether the text mentions any evidentiary term,
// case-insensitive, substring match.
func HasEvidenceSignal(text string) bool {
	folded := strings.ToLower(text)
	for _, term := range evidenceTerms {
		if strings.Contains(folded, term) {
			return true
		}
	}
	return false
}
