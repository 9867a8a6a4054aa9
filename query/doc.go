// Package query models OBIS query arguments and builds encoded query URLs.
//
// The OBIS API accepts most filter parameters either as a single value or
// as a comma-separated list. [StringArg] and [IntArg] capture that shape
// explicitly: a value is absent, a scalar, or a sequence, and the variant
// is carried as a tag rather than inferred from a runtime type.
//
//	args := query.NewArgs()
//	args.SetString("scientificname", query.Strings("Mola mola", "Abra alba"))
//	args.SetInt("taxonid", query.Int(402913))
//	u := query.BuildURL("https://api.obis.org/v3/taxon", args)
//
// Absent values never appear in the encoded query string, and parameters
// are encoded in insertion order.
package query
