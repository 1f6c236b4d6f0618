// Command discdump builds, parses, normalizes and stores argument strings for
// the Redumper, DiscImageCreator and Aaru disc dumping programs.
//
// Parameter strings are passed after "--" so their own flags reach the
// program grammar untouched:
//
//	discdump parse -p redumper -- cd --drive=/dev/sr0 --speed=8
package main
