// Package taxa is the query facade for the OBIS /taxon API endpoints,
// documented at https://api.obis.org/.
//
//	c, err := taxa.New()
//	res, err := c.Search(ctx, query.String("Mola mola"))
//	u, err := res.SearchURL() // https://api.obis.org/v3/taxon/Mola mola?scientificname=Mola+mola
//
// Every operation returns a [Result] holding the built URL, the query
// arguments, and the JSON-decoded body. [Client.MapperURL] serializes a
// result's query against the OBIS mapper host, resolving a taxon id via
// [Client.LookupTaxon] when needed.
//
// A query that matches no records surfaces as [ErrNoResult]; see its
// documentation for the ambiguity it carries.
package taxa
