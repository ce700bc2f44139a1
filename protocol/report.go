// Button report framing
// Defines the fixed-size frame the firmware sends over serial each time the
// pad snapshot changes, and the incremental decoder the host uses to read a
// byte stream back into reports.
package protocol

// Frame layout: [length][dest|seq][mask][crc hi][crc lo][sync]
const (
	ReportLength     = 6
	ReportSync       = 0x7E
	ReportDest       = 0x10
	ReportSeqMask    = 0x0F
	reportPosLen     = 0
	reportPosSeq     = 1
	reportPosMask    = 2
	reportPosCRC     = 3
	reportTrailerLen = 3 // crc hi, crc lo, sync
)

// Report is one decoded pad snapshot.
type Report struct {
	// Seq is the 4-bit sequence number the firmware increments per report.
	// Gaps tell the host that frames were dropped.
	Seq uint8

	// Mask is the pad's button snapshot; bit i set means button i pressed.
	Mask uint8
}

// EncodeReport builds the wire frame for one snapshot. Only the low four
// bits of seq are carried.
func EncodeReport(seq uint8, mask uint8) []byte {
	frame := make([]byte, ReportLength)
	frame[reportPosLen] = ReportLength
	frame[reportPosSeq] = ReportDest | seq&ReportSeqMask
	frame[reportPosMask] = mask
	crc := CRC16(frame[:reportPosCRC])
	frame[reportPosCRC] = byte(crc >> 8)
	frame[reportPosCRC+1] = byte(crc)
	frame[ReportLength-1] = ReportSync
	return frame
}

// Decoder turns a raw serial byte stream back into reports. It tolerates
// partial frames across Feed calls and resynchronizes on the trailing sync
// byte after any malformed frame, so a torn frame from a reconnect costs at
// most the bytes up to the next frame boundary.
type Decoder struct {
	buf []byte

	// lost is set after a malformed frame; the decoder then scans for the
	// next sync byte before trusting the stream again. The zero value
	// starts synchronized.
	lost bool
}

// Feed appends stream bytes and returns every complete report they finish.
// A nil or empty slice is allowed and returns no reports.
func (d *Decoder) Feed(p []byte) []Report {
	d.buf = append(d.buf, p...)

	var reports []Report
	for {
		if d.lost {
			// Discard everything up to and including the next sync byte.
			pos := -1
			for i, b := range d.buf {
				if b == ReportSync {
					pos = i
					break
				}
			}
			if pos < 0 {
				d.buf = d.buf[:0]
				return reports
			}
			d.buf = d.buf[pos+1:]
			d.lost = false
		}

		// Skip stray sync bytes between frames.
		for len(d.buf) > 0 && d.buf[0] == ReportSync {
			d.buf = d.buf[1:]
		}
		if len(d.buf) < ReportLength {
			return reports
		}

		frame := d.buf[:ReportLength]
		if frame[reportPosLen] != ReportLength ||
			frame[reportPosSeq]&^ReportSeqMask != ReportDest ||
			frame[ReportLength-1] != ReportSync {
			d.lost = true
			continue
		}

		crc := uint16(frame[reportPosCRC])<<8 | uint16(frame[reportPosCRC+1])
		if crc != CRC16(frame[:reportPosCRC]) {
			d.lost = true
			continue
		}

		reports = append(reports, Report{
			Seq:  frame[reportPosSeq] & ReportSeqMask,
			Mask: frame[reportPosMask],
		})
		d.buf = d.buf[ReportLength:]
	}
}
