//Package nmljson serializes the contents of nml line stores to JSON, so
//programs in other languages can look at marici input files without
//parsing the format themselves. Each value written is one JSON object per
//line of output, which callers can read, for instance, through a UNIX pipe.
//Errors are also JSON-serializable, so they can go through the same channel.
package nmljson
