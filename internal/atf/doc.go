// Package atf serializes waveforms to Axon Text File (ATF) stimulus
// files for episodic playback in Clampex.
//
// Layout of an emitted file:
//   - magic line: ATF <tab> 1.0
//   - record counts: 7 optional header records, 2 data columns
//   - 7 quoted header records, including the audit comment that
//     carries every generation parameter and a run ID
//   - quoted column titles: "Time (s)" and "IN 0 (pA)"
//   - one tab-separated data row per sample
//
// The time column is reference only: true playback timing is governed
// by the protocol's own sampling configuration. Files are written to a
// temp file and renamed into place, so a failed write never leaves a
// truncated file that looks complete.
package atf
